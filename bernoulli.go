package randist

import "github.com/nozzle/randist/rng"

// Bernoulli samples 1 with a fixed success probability, otherwise 0.
type Bernoulli struct {
	src rng.Source
	p   float64
}

// NewBernoulli returns a Bernoulli sampler. p must lie in [0, 1].
func NewBernoulli(src rng.Source, p float64) (*Bernoulli, error) {
	if err := checkInterval(p, 0, 1); err != nil {
		return nil, err
	}
	return &Bernoulli{src: source(src), p: p}, nil
}

// NewCoin returns a fair Bernoulli sampler.
func NewCoin(src rng.Source) *Bernoulli {
	b, _ := NewBernoulli(src, 0.5)
	return b
}

// Sample returns 1 with probability p, otherwise 0.
func (b *Bernoulli) Sample() float64 {
	if b.src.Uniform() < b.p {
		return 1
	}
	return 0
}

// SetP replaces the success probability. p must lie in [0, 1].
func (b *Bernoulli) SetP(p float64) error {
	if err := checkInterval(p, 0, 1); err != nil {
		return err
	}
	b.p = p
	return nil
}

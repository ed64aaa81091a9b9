package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// Poisson samples event counts using Knuth's product-of-uniforms loop.
type Poisson struct {
	src  rng.Source
	rate float64
	exp  float64
}

// NewPoisson returns a Poisson sampler. rate must be positive.
func NewPoisson(src rng.Source, rate float64) (*Poisson, error) {
	if err := checkPositive(rate); err != nil {
		return nil, err
	}
	return &Poisson{src: source(src), rate: rate, exp: math.Exp(-rate)}, nil
}

// Sample returns a Poisson count as a float64. The loop multiplies uniforms
// until the product drops below e^-rate, so the expected draw count grows
// linearly with the rate.
func (p *Poisson) Sample() float64 {
	k := 0
	prod := 1.0
	for {
		k++
		prod *= p.src.Uniform()
		if prod <= p.exp {
			return float64(k - 1)
		}
	}
}

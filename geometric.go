package randist

import (
	"math"

	"github.com/nozzle/randist/internal/fastmath"
	"github.com/nozzle/randist/rng"
)

// Geometric samples the number of Bernoulli trials up to and including the
// first success, by inverting the CDF with the fast logarithm.
type Geometric struct {
	src rng.Source
	p   float64
}

// NewGeometric returns a geometric sampler. p must lie in [0, 1].
func NewGeometric(src rng.Source, p float64) (*Geometric, error) {
	if err := checkInterval(p, 0, 1); err != nil {
		return nil, err
	}
	return &Geometric{src: source(src), p: p}, nil
}

// Sample returns the trial count as a float64, at least 1.
func (g *Geometric) Sample() float64 {
	return math.Ceil(fastmath.Ln(g.src.Uniform()) / fastmath.Ln(1-g.p))
}

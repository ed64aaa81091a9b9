package randist

import (
	"math"

	"github.com/nozzle/randist/internal/fastmath"
	"github.com/nozzle/randist/rng"
)

// Gumbel samples from the Gumbel (type I extreme value) distribution.
type Gumbel struct {
	src      rng.Source
	location float64
	scale    float64
}

// NewGumbel returns a Gumbel sampler. scale must be positive.
func NewGumbel(src rng.Source, location, scale float64) (*Gumbel, error) {
	if err := checkPositive(scale); err != nil {
		return nil, err
	}
	return &Gumbel{src: source(src), location: location, scale: scale}, nil
}

// Sample returns a Gumbel-distributed variate.
func (g *Gumbel) Sample() float64 {
	return g.location - g.scale*math.Log(-fastmath.Ln(g.src.Uniform()))
}

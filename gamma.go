package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// Gamma samples from the gamma distribution with integer shape (the Erlang
// case): the sum of shape independent exponentials, computed as the log of a
// product of uniforms.
type Gamma struct {
	src   rng.Source
	shape int
	scale float64
}

// NewGamma returns a gamma sampler. shape and scale must be positive.
func NewGamma(src rng.Source, shape int, scale float64) (*Gamma, error) {
	if err := checkPositive(float64(shape)); err != nil {
		return nil, err
	}
	if err := checkPositive(scale); err != nil {
		return nil, err
	}
	return &Gamma{src: source(src), shape: shape, scale: scale}, nil
}

// Sample returns a gamma-distributed variate with mean shape*scale.
func (g *Gamma) Sample() float64 {
	prod := 1.0
	for i := 0; i < g.shape; i++ {
		prod *= g.src.Uniform()
	}
	return math.Log(prod) * -g.scale
}

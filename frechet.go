package randist

import (
	"math"

	"github.com/nozzle/randist/internal/fastmath"
	"github.com/nozzle/randist/rng"
)

// Frechet samples from the Frechet (inverse Weibull) distribution.
type Frechet struct {
	src      rng.Source
	location float64
	shape    float64
	scale    float64
}

// NewFrechet returns a Frechet sampler. shape and scale must be positive.
func NewFrechet(src rng.Source, location, shape, scale float64) (*Frechet, error) {
	if err := checkPositive(shape); err != nil {
		return nil, err
	}
	if err := checkPositive(scale); err != nil {
		return nil, err
	}
	return &Frechet{src: source(src), location: location, shape: shape, scale: scale}, nil
}

// Sample returns a Frechet-distributed variate.
func (f *Frechet) Sample() float64 {
	return f.location + f.scale*math.Pow(-fastmath.Ln(f.src.Uniform()), -1/f.shape)
}

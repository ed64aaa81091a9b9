package randist

import (
	"math"

	"github.com/nozzle/randist/internal/fastmath"
	"github.com/nozzle/randist/rng"
)

// Weibull samples from the Weibull distribution by inverting the CDF with
// the fast logarithm.
type Weibull struct {
	src   rng.Source
	shape float64
	scale float64
}

// NewWeibull returns a Weibull sampler. shape and scale must be positive.
func NewWeibull(src rng.Source, shape, scale float64) (*Weibull, error) {
	if err := checkPositive(shape); err != nil {
		return nil, err
	}
	if err := checkPositive(scale); err != nil {
		return nil, err
	}
	return &Weibull{src: source(src), shape: shape, scale: scale}, nil
}

// Sample returns a Weibull-distributed variate.
func (w *Weibull) Sample() float64 {
	return w.scale * math.Pow(-fastmath.Ln(w.src.Uniform()), 1/w.shape)
}

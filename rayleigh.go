package randist

import (
	"math"

	"github.com/nozzle/randist/internal/fastmath"
	"github.com/nozzle/randist/rng"
)

// Rayleigh samples from the Rayleigh distribution, the Weibull special case
// with shape 2.
type Rayleigh struct {
	src   rng.Source
	scale float64
}

// NewRayleigh returns a Rayleigh sampler. scale must be positive.
func NewRayleigh(src rng.Source, scale float64) (*Rayleigh, error) {
	if err := checkPositive(scale); err != nil {
		return nil, err
	}
	return &Rayleigh{src: source(src), scale: scale}, nil
}

// Sample returns a Rayleigh-distributed variate.
func (r *Rayleigh) Sample() float64 {
	return r.scale * math.Sqrt(-2*fastmath.Ln(r.src.Uniform()))
}

package randist

import (
	"math"

	"github.com/nozzle/randist/internal/fastmath"
	"github.com/nozzle/randist/rng"
)

// Laplace samples from the double-exponential distribution by folding a
// single uniform draw around its midpoint.
type Laplace struct {
	src      rng.Source
	location float64
	scale    float64
}

// NewLaplace returns a Laplace sampler. scale must be positive.
func NewLaplace(src rng.Source, location, scale float64) (*Laplace, error) {
	if err := checkPositive(scale); err != nil {
		return nil, err
	}
	return &Laplace{src: source(src), location: location, scale: scale}, nil
}

// Sample returns a Laplace-distributed variate. A draw landing exactly on an
// endpoint pushes the log argument to 0, which the fast logarithm clamps to
// a finite tail value.
func (l *Laplace) Sample() float64 {
	u := l.src.Uniform() - 0.5
	return l.location - l.scale*math.Copysign(1, u)*fastmath.Ln(1-2*math.Abs(u))
}

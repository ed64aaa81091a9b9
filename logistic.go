package randist

import (
	"github.com/nozzle/randist/internal/fastmath"
	"github.com/nozzle/randist/rng"
)

// Logistic samples from the logistic distribution via the logit of a
// uniform draw.
type Logistic struct {
	src      rng.Source
	location float64
	scale    float64
}

// NewLogistic returns a logistic sampler. scale must be positive.
func NewLogistic(src rng.Source, location, scale float64) (*Logistic, error) {
	if err := checkPositive(scale); err != nil {
		return nil, err
	}
	return &Logistic{src: source(src), location: location, scale: scale}, nil
}

// Sample returns a logistically distributed variate.
func (l *Logistic) Sample() float64 {
	u := l.src.Uniform()
	return l.location + l.scale*(fastmath.Ln(u)-fastmath.Ln(1-u))
}

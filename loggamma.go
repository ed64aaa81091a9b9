package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// LogGamma samples e raised to a gamma variate.
type LogGamma struct {
	src   rng.Source
	shape int
	scale float64
}

// NewLogGamma returns a log-gamma sampler. shape and scale must be positive.
func NewLogGamma(src rng.Source, shape int, scale float64) (*LogGamma, error) {
	if err := checkPositive(float64(shape)); err != nil {
		return nil, err
	}
	if err := checkPositive(scale); err != nil {
		return nil, err
	}
	return &LogGamma{src: source(src), shape: shape, scale: scale}, nil
}

// Sample returns exp of a gamma-distributed variate.
func (l *LogGamma) Sample() float64 {
	prod := 1.0
	for i := 0; i < l.shape; i++ {
		prod *= l.src.Uniform()
	}
	return math.Exp(math.Log(prod) * -l.scale)
}

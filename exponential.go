package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// Exponential samples from the exponential distribution by inverting the CDF
// of a uniform draw.
type Exponential struct {
	src         rng.Source
	rate        float64
	inverseRate float64
}

// NewExponential returns an exponential sampler. rate must be positive.
func NewExponential(src rng.Source, rate float64) (*Exponential, error) {
	if err := checkPositive(rate); err != nil {
		return nil, err
	}
	return &Exponential{src: source(src), rate: rate, inverseRate: 1 / rate}, nil
}

// Sample returns an exponentially distributed variate with mean 1/rate.
func (e *Exponential) Sample() float64 {
	return -math.Log(e.src.Uniform()) * e.inverseRate
}

package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// LogNormal samples e raised to a normal variate.
type LogNormal struct {
	normal *rng.NormalSampler
	mean   float64
	std    float64
}

// NewLogNormal returns a log-normal sampler parameterized by the mean and
// variance of the underlying normal. variance must be positive.
func NewLogNormal(src rng.Source, mean, variance float64) (*LogNormal, error) {
	if err := checkPositive(variance); err != nil {
		return nil, err
	}
	return &LogNormal{
		normal: rng.NewNormalSampler(source(src)),
		mean:   mean,
		std:    math.Sqrt(variance),
	}, nil
}

// Sample returns a log-normally distributed variate.
func (l *LogNormal) Sample() float64 {
	return math.Exp(l.std*l.normal.Sample() + l.mean)
}

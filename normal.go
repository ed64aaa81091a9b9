package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// Normal samples from the normal distribution by scaling and shifting
// standard-normal variates drawn with the polar method.
type Normal struct {
	normal   *rng.NormalSampler
	mean     float64
	variance float64
	std      float64
}

// NewNormal returns a normal sampler with the given mean and variance.
// variance must be positive.
func NewNormal(src rng.Source, mean, variance float64) (*Normal, error) {
	if err := checkPositive(variance); err != nil {
		return nil, err
	}
	return &Normal{
		normal:   rng.NewNormalSampler(source(src)),
		mean:     mean,
		variance: variance,
		std:      math.Sqrt(variance),
	}, nil
}

// NewStandardNormal returns a sampler with mean 0 and variance 1.
func NewStandardNormal(src rng.Source) *Normal {
	n, _ := NewNormal(src, 0, 1)
	return n
}

// Sample returns a normally distributed variate.
func (n *Normal) Sample() float64 {
	return n.std*n.normal.Sample() + n.mean
}

package randist

import "github.com/nozzle/randist/rng"

// ChiSquared samples the sum of k squared standard normals.
type ChiSquared struct {
	normal *rng.NormalSampler
	k      int
}

// NewChiSquared returns a chi-squared sampler with k degrees of freedom.
// k must be positive.
func NewChiSquared(src rng.Source, k int) (*ChiSquared, error) {
	if err := checkPositive(float64(k)); err != nil {
		return nil, err
	}
	return &ChiSquared{normal: rng.NewNormalSampler(source(src)), k: k}, nil
}

// Sample returns a chi-squared variate with mean k.
func (c *ChiSquared) Sample() float64 {
	sum := 0.0
	for i := 0; i < c.k; i++ {
		z := c.normal.Sample()
		sum += z * z
	}
	return sum
}

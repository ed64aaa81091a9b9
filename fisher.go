package randist

import "github.com/nozzle/randist/rng"

// Fisher samples the F distribution as a ratio of two scaled chi-squared
// variates.
type Fisher struct {
	normal *rng.NormalSampler
	m      int
	n      int
}

// NewFisher returns an F sampler with m and n degrees of freedom. Both must
// be positive.
func NewFisher(src rng.Source, m, n int) (*Fisher, error) {
	if err := checkPositive(float64(m)); err != nil {
		return nil, err
	}
	if err := checkPositive(float64(n)); err != nil {
		return nil, err
	}
	return &Fisher{normal: rng.NewNormalSampler(source(src)), m: m, n: n}, nil
}

// Sample returns an F-distributed variate.
func (f *Fisher) Sample() float64 {
	return f.chiSquared(f.m) / float64(f.m) / (f.chiSquared(f.n) / float64(f.n))
}

func (f *Fisher) chiSquared(k int) float64 {
	sum := 0.0
	for i := 0; i < k; i++ {
		z := f.normal.Sample()
		sum += z * z
	}
	return sum
}

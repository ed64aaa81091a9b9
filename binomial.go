package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// maxBinomialN bounds the precomputed CDF table.
const maxBinomialN = 128

// Binomial samples the number of successes in n trials by inverting a
// precomputed CDF table with a single uniform draw.
type Binomial struct {
	src rng.Source
	n   int
	p   float64
	cdf []float64
}

// NewBinomial returns a binomial sampler. n must lie in [1, 128] and p in
// [0, 1].
func NewBinomial(src rng.Source, n int, p float64) (*Binomial, error) {
	if err := checkPositive(float64(n)); err != nil {
		return nil, err
	}
	if err := checkInterval(float64(n), 0, maxBinomialN); err != nil {
		return nil, err
	}
	if err := checkInterval(p, 0, 1); err != nil {
		return nil, err
	}
	return &Binomial{src: source(src), n: n, p: p, cdf: binomialCDF(n, p)}, nil
}

// Sample returns the success count as a float64 in [0, n].
func (b *Binomial) Sample() float64 {
	u := b.src.Uniform()
	for k, c := range b.cdf {
		if c > u {
			return float64(k)
		}
	}
	return float64(b.n)
}

// binomialCDF builds the cumulative distribution table using the pmf ratio
// recurrence, which stays in float range for any n up to maxBinomialN.
func binomialCDF(n int, p float64) []float64 {
	cdf := make([]float64, n+1)
	switch p {
	case 0:
		for i := range cdf {
			cdf[i] = 1
		}
		return cdf
	case 1:
		cdf[n] = 1
		return cdf
	}
	q := 1 - p
	pmf := math.Pow(q, float64(n))
	sum := pmf
	cdf[0] = sum
	for k := 1; k <= n; k++ {
		pmf *= float64(n-k+1) / float64(k) * p / q
		sum += pmf
		cdf[k] = sum
	}
	return cdf
}

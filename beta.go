package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// Beta samples from the beta distribution with integer shape parameters,
// as the ratio X/(X+Y) of two gamma variates.
type Beta struct {
	src   rng.Source
	alpha int
	beta  int
}

// NewBeta returns a beta sampler. alpha and beta must be positive.
func NewBeta(src rng.Source, alpha, beta int) (*Beta, error) {
	if err := checkPositive(float64(alpha)); err != nil {
		return nil, err
	}
	if err := checkPositive(float64(beta)); err != nil {
		return nil, err
	}
	return &Beta{src: source(src), alpha: alpha, beta: beta}, nil
}

// Sample returns a beta-distributed variate in [0, 1].
func (b *Beta) Sample() float64 {
	x := b.gamma(b.alpha)
	y := b.gamma(b.beta)
	return x / (x + y)
}

// gamma draws a standard gamma variate with the given integer shape.
func (b *Beta) gamma(shape int) float64 {
	prod := 1.0
	for i := 0; i < shape; i++ {
		prod *= b.src.Uniform()
	}
	return -math.Log(prod)
}

package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// Pareto samples from the Pareto distribution by inverse transform.
type Pareto struct {
	src          rng.Source
	scale        float64
	shape        float64
	inverseShape float64
}

// NewPareto returns a Pareto sampler. scale and shape must be positive.
func NewPareto(src rng.Source, scale, shape float64) (*Pareto, error) {
	if err := checkPositive(scale); err != nil {
		return nil, err
	}
	if err := checkPositive(shape); err != nil {
		return nil, err
	}
	return &Pareto{src: source(src), scale: scale, shape: shape, inverseShape: 1 / shape}, nil
}

// Sample returns a Pareto-distributed variate, at least scale.
func (p *Pareto) Sample() float64 {
	return p.scale / math.Pow(p.src.Uniform(), p.inverseShape)
}

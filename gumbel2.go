package randist

import (
	"math"

	"github.com/nozzle/randist/internal/fastmath"
	"github.com/nozzle/randist/rng"
)

// Gumbel2 samples from the type II extreme value distribution.
type Gumbel2 struct {
	src   rng.Source
	shape float64
	scale float64
}

// NewGumbel2 returns a type II Gumbel sampler.
func NewGumbel2(src rng.Source, shape, scale float64) *Gumbel2 {
	return &Gumbel2{src: source(src), shape: shape, scale: scale}
}

// Sample returns a type II Gumbel variate.
func (g *Gumbel2) Sample() float64 {
	return math.Pow(-fastmath.Ln(g.src.Uniform()/g.scale), -1/g.shape)
}

package rng

import (
	"math"

	"github.com/nozzle/randist/internal/fastmath"
)

// pending is the one-slot cache between paired polar draws: either empty or
// holding a variate stamped with the source epoch it was derived from. A
// stamped value is dead once the source is reseeded or restarted.
type pending struct {
	value float64
	epoch uint64
	full  bool
}

// NormalSampler draws standard-normal (mean 0, variance 1) variates from a
// Source using the Marsaglia polar method. Each accepted rejection-loop
// iteration yields two independent variates; the second is held back and
// returned by the following call without touching the source. The expected
// iteration count per pair is 4/pi.
//
// Like Engine, a NormalSampler is exclusively owned by one logical caller.
type NormalSampler struct {
	src   Source
	cache pending
}

// NewNormalSampler returns a sampler over src. A nil src gets a fresh
// ambient-seeded engine.
func NewNormalSampler(src Source) *NormalSampler {
	if src == nil {
		src = NewEngine()
	}
	return &NormalSampler{src: src}
}

// Source returns the source the sampler draws from.
func (n *NormalSampler) Source() Source {
	return n.src
}

// Sample returns the next standard-normal variate.
func (n *NormalSampler) Sample() float64 {
	if n.cache.full && n.cache.epoch == n.src.Epoch() {
		n.cache.full = false
		return n.cache.value
	}
	n.cache.full = false

	for {
		u := 2*n.src.Uniform() - 1
		v := 2*n.src.Uniform() - 1
		s := u*u + v*v
		// Accept only points strictly inside the unit disk; the corners of
		// the square and the degenerate origin are rejected.
		if s >= 1 || s == 0 {
			continue
		}
		factor := math.Sqrt(-2 * fastmath.Ln(s) / s)
		n.cache = pending{value: v * factor, epoch: n.src.Epoch(), full: true}
		return u * factor
	}
}

// Package randist generates reproducible pseudorandom variates for a broad
// assortment of probability distributions.
//
// Every sampler draws from a rng.Source. Passing the same explicitly seeded
// engine reproduces the same variate sequence on every run; passing nil gives
// the sampler its own time-seeded engine. Sharing one source across several
// samplers interleaves their draws deterministically.
//
// Basic usage:
//
//	src := rng.NewEngineSeed(42)
//	w, err := randist.NewWeibull(src, 1.5, 2.0)
//	if err != nil {
//		...
//	}
//	v := w.Sample()
//
// None of the samplers are safe for concurrent use; give each goroutine its
// own independently seeded source.
package randist

import "github.com/nozzle/randist/rng"

// Sampler is the surface every distribution in this package exposes: one
// variate per call. Discrete distributions convert their integer results to
// float64.
type Sampler interface {
	Sample() float64
}

// Samples draws n variates from s.
func Samples(s Sampler, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Sample()
	}
	return out
}

// source returns src, or a fresh ambient-seeded engine when src is nil.
func source(src rng.Source) rng.Source {
	if src == nil {
		return rng.NewEngine()
	}
	return src
}

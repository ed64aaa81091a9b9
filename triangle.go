package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// Triangle samples from the triangular distribution on [a, b] with mode c,
// by two-branch inverse transform.
type Triangle struct {
	src     rng.Source
	a, b, c float64
	// splitAt is the CDF value at the mode; draws below it fall on the
	// rising edge, draws above it on the falling edge.
	splitAt float64
}

// NewTriangle returns a triangular sampler. Requires a < b and c in [a, b].
func NewTriangle(src rng.Source, a, b, c float64) (*Triangle, error) {
	if err := checkOrder(a, b); err != nil {
		return nil, err
	}
	if err := checkInterval(c, a, b); err != nil {
		return nil, err
	}
	return &Triangle{src: source(src), a: a, b: b, c: c, splitAt: (c - a) / (b - a)}, nil
}

// Sample returns a triangularly distributed variate in [a, b].
func (t *Triangle) Sample() float64 {
	u := t.src.Uniform()
	if u < t.splitAt {
		return t.a + math.Sqrt(u*(t.b-t.a)*(t.c-t.a))
	}
	return t.b - math.Sqrt((1-u)*(t.b-t.a)*(t.b-t.c))
}

package randist

import "github.com/nozzle/randist/rng"

// Uniform samples uniformly from the interval [a, b].
type Uniform struct {
	src  rng.Source
	a, b float64
}

// NewUniform returns a uniform sampler over [a, b]. Requires a < b.
func NewUniform(src rng.Source, a, b float64) (*Uniform, error) {
	if err := checkOrder(a, b); err != nil {
		return nil, err
	}
	return &Uniform{src: source(src), a: a, b: b}, nil
}

// Sample returns a variate uniformly distributed on [a, b].
func (u *Uniform) Sample() float64 {
	return u.a + (u.b-u.a)*u.src.Uniform()
}

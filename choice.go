package randist

import "github.com/nozzle/randist/rng"

// Choice picks uniformly from a fixed, non-empty slice of alternatives.
type Choice[T any] struct {
	src   rng.Source
	items []T
}

// NewChoice returns a sampler over items. The slice must not be empty; it is
// not copied, so callers must not mutate it while sampling.
func NewChoice[T any](src rng.Source, items []T) (*Choice[T], error) {
	if len(items) == 0 {
		return nil, &ParamError{Kind: ErrEmpty}
	}
	return &Choice[T]{src: source(src), items: items}, nil
}

// Pick returns a uniformly chosen element. The index is capped because
// Uniform can return exactly 1.
func (c *Choice[T]) Pick() T {
	i := int(float64(len(c.items)) * c.src.Uniform())
	if i >= len(c.items) {
		i = len(c.items) - 1
	}
	return c.items[i]
}

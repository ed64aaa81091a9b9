package randist

import (
	"math"

	"github.com/nozzle/randist/rng"
)

// StudentsT samples a standard normal divided by the root of a scaled
// chi-squared variate.
type StudentsT struct {
	normal *rng.NormalSampler
	k      int
}

// NewStudentsT returns a t sampler with k degrees of freedom. k must be
// positive.
func NewStudentsT(src rng.Source, k int) (*StudentsT, error) {
	if err := checkPositive(float64(k)); err != nil {
		return nil, err
	}
	return &StudentsT{normal: rng.NewNormalSampler(source(src)), k: k}, nil
}

// Sample returns a t-distributed variate.
func (t *StudentsT) Sample() float64 {
	sum := 0.0
	for i := 0; i < t.k; i++ {
		z := t.normal.Sample()
		sum += z * z
	}
	return t.normal.Sample() / math.Sqrt(sum/float64(t.k))
}

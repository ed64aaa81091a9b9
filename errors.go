package randist

import "fmt"

// ErrKind enumerates the ways a distribution parameter can be rejected.
type ErrKind int

const (
	// ErrOrder reports a bound pair that arrived with low >= high.
	ErrOrder ErrKind = iota
	// ErrPositive reports a parameter that must be strictly positive.
	ErrPositive
	// ErrInterval reports a parameter outside its closed interval.
	ErrInterval
	// ErrEmpty reports a collection parameter with no elements.
	ErrEmpty
)

// ParamError describes a rejected distribution parameter. Construction is
// the only place a sampler can fail; sampling itself never returns an error.
type ParamError struct {
	Kind  ErrKind
	Value float64
	Low   float64
	High  float64
}

func (e *ParamError) Error() string {
	switch e.Kind {
	case ErrOrder:
		return fmt.Sprintf("randist: expected low < high, got low = %v and high = %v", e.Low, e.High)
	case ErrPositive:
		return fmt.Sprintf("randist: expected value > 0, got %v", e.Value)
	case ErrInterval:
		return fmt.Sprintf("randist: expected %v <= value <= %v, got %v", e.Low, e.High, e.Value)
	default:
		return "randist: collection must not be empty"
	}
}

func checkOrder(low, high float64) error {
	if low < high {
		return nil
	}
	return &ParamError{Kind: ErrOrder, Low: low, High: high}
}

func checkPositive(value float64) error {
	if value > 0 {
		return nil
	}
	return &ParamError{Kind: ErrPositive, Value: value}
}

func checkInterval(value, low, high float64) error {
	if value >= low && value <= high {
		return nil
	}
	return &ParamError{Kind: ErrInterval, Value: value, Low: low, High: high}
}

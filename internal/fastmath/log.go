// Package fastmath provides the table-driven natural logarithm used on the
// sampling hot path. Nearly every non-uniform distribution takes the log of
// a uniform draw, so a bounded-accuracy approximation pays for itself.
package fastmath

import "math"

// The table samples ln at logNodes+1 equally spaced points across the
// mantissa range [0.5, 1). A query splits x into mantissa and exponent,
// interpolates ln(mantissa) linearly between the two surrounding nodes and
// adds exponent*ln(2), so accuracy is flat across the whole positive range
// instead of collapsing near zero. Measured worst-case absolute error at
// 4096 intervals is about 7.5e-9; the documented tolerance is 1e-6.
const (
	logNodes = 4096
	logStep  = 0.5 / logNodes
)

var logTable = buildLogTable()

func buildLogTable() [logNodes + 1]float64 {
	var t [logNodes + 1]float64
	for i := range t {
		t[i] = math.Log(0.5 + float64(i)*logStep)
	}
	return t
}

// Ln approximates the natural logarithm of x for x in (0, 1].
//
// ln is undefined at zero, and the engine's uniform draw can return exactly
// zero, so inputs at or below zero are clamped to the smallest positive
// float64 and yield a large negative but finite result rather than -Inf.
// Inputs above 1 go through the same mantissa reduction and stay within the
// documented error bound.
func Ln(x float64) float64 {
	if x <= 0 {
		x = math.SmallestNonzeroFloat64
	}
	frac, exp := math.Frexp(x)
	i := int((frac - 0.5) / logStep)
	if i >= logNodes {
		i = logNodes - 1
	}
	x0 := 0.5 + float64(i)*logStep
	t := (frac - x0) / logStep
	return logTable[i] + t*(logTable[i+1]-logTable[i]) + float64(exp)*math.Ln2
}

// Package quad implements the fixed-node quadrature rules shared by the
// emissivity, absorption and normalization integrals.
//
// Integrands in this module span many decades in their abscissa, so every
// rule works on nodes spaced evenly in the logarithm. Weighted sums are
// evaluated with vecmath.DotProduct.
package quad

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// LogGrid returns n nodes spaced evenly in ln x between a and b inclusive.
// The end points are returned exactly. Panics if n < 2 or a, b are not
// positive.
func LogGrid(a, b float64, n int) []float64 {
	if n < 2 {
		panic("quad: log grid needs at least two nodes")
	}
	if !(a > 0) || !(b > 0) {
		panic("quad: log grid bounds must be positive")
	}

	out := make([]float64, n)
	la := math.Log(a)
	step := (math.Log(b) - la) / float64(n-1)
	for i := range out {
		out[i] = math.Exp(la + step*float64(i))
	}
	out[0] = a
	out[n-1] = b

	return out
}

// TrapezoidWeights returns w such that Σ w_i·f(x_i) is the trapezoid-rule
// approximation of ∫ f dx over the ordered nodes x.
func TrapezoidWeights(x []float64) []float64 {
	n := len(x)
	w := make([]float64, n)
	if n < 2 {
		return w
	}

	w[0] = 0.5 * (x[1] - x[0])
	for i := 1; i < n-1; i++ {
		w[i] = 0.5 * (x[i+1] - x[i-1])
	}
	w[n-1] = 0.5 * (x[n-1] - x[n-2])

	return w
}

// Sum evaluates a weighted quadrature Σ w_i·f_i. Both slices must have the
// same length.
func Sum(w, f []float64) float64 {
	if len(w) != len(f) {
		panic("quad: weights and samples must have same length")
	}
	return vecmath.DotProduct(w, f)
}

// Trapezoid integrates samples f taken at nodes x with the trapezoid rule.
func Trapezoid(x, f []float64) float64 {
	return Sum(TrapezoidWeights(x), f)
}

// SimpsonLog integrates fn over [a, b] with the composite Simpson rule in
// u = ln x, i.e. ∫ fn(x) dx = ∫ fn(e^u)·e^u du. intervals is rounded up to
// an even number; at least two are used. Returns 0 when a == b.
func SimpsonLog(fn func(float64) float64, a, b float64, intervals int) float64 {
	if a == b {
		return 0
	}
	if intervals < 2 {
		intervals = 2
	}
	if intervals%2 != 0 {
		intervals++
	}

	x := LogGrid(a, b, intervals+1)
	h := (math.Log(b) - math.Log(a)) / float64(intervals)

	f := make([]float64, len(x))
	w := make([]float64, len(x))
	for i, xi := range x {
		f[i] = fn(xi)
		switch {
		case i == 0 || i == intervals:
			w[i] = 1
		case i%2 == 1:
			w[i] = 4
		default:
			w[i] = 2
		}
	}
	// Jacobian dx = x du folded into the weights.
	vecmath.MulBlockInPlace(w, x)

	return Sum(w, f) * h / 3
}

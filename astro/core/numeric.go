package core

import (
	"fmt"
	"math"
)

// Clamp limits x to [lo, hi]. NaN passes through.
func Clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// NearlyEqual reports whether a and b agree to within rel of the larger
// magnitude.
func NearlyEqual(a, b, rel float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= rel*math.Max(math.Abs(a), math.Abs(b))
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LogSpace returns n values spaced evenly in log10 between start and stop,
// both included. start and stop must be positive.
func LogSpace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	lo := math.Log10(start)
	step := (math.Log10(stop) - lo) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, lo+step*float64(i))
	}
	// Pin the endpoints so grids start and stop exactly where asked.
	out[0] = start
	out[n-1] = stop

	return out
}

// CheckPositive returns an ErrDomain-wrapped error naming the first element
// of values that is not strictly positive and finite.
func CheckPositive(name string, values []float64) error {
	for i, v := range values {
		if !(v > 0) || math.IsInf(v, 1) {
			return fmt.Errorf("%w: %s[%d] = %v must be positive and finite", ErrDomain, name, i, v)
		}
	}
	return nil
}

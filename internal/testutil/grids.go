package testutil

import "math"

// Decades returns 10^k for every integer k in [lo, hi].
func Decades(lo, hi int) []float64 {
	if hi < lo {
		return nil
	}
	out := make([]float64, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		out = append(out, math.Pow(10, float64(k)))
	}
	return out
}

// HalfDecades returns 10^(k/2) for every integer k in [2·lo, 2·hi].
func HalfDecades(lo, hi int) []float64 {
	if hi < lo {
		return nil
	}
	out := make([]float64, 0, 2*(hi-lo)+1)
	for k := 2 * lo; k <= 2*hi; k++ {
		out = append(out, math.Pow(10, float64(k)/2))
	}
	return out
}

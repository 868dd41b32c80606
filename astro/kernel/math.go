//go:build !fastmath

package kernel

import "math"

// cbrt computes x^{1/3} using standard library math.
func cbrt(x float64) float64 {
	return math.Cbrt(x)
}

// sqrt computes sqrt(x) using standard library math.
func sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// expNeg computes e^{-x} using standard library math.
func expNeg(x float64) float64 {
	return math.Exp(-x)
}

//go:build fastmath

package kernel

import (
	"github.com/meko-christian/algo-approx"
)

// cbrt computes x^{1/3} using fast approximation.
// Uses the identity: x^{1/3} = e^(ln(x) / 3)
func cbrt(x float64) float64 {
	return approx.FastExp(approx.FastLog(x) / 3)
}

// sqrt computes sqrt(x) using fast approximation.
func sqrt(x float64) float64 {
	return approx.FastSqrt(x)
}

// expNeg computes e^{-x} using fast approximation.
func expNeg(x float64) float64 {
	return approx.FastExp(-x)
}

// Package specfunc evaluates the special functions the synchrotron kernel is
// built from.
package specfunc

import "math"

const (
	// besselCutoff bounds the integration range where y·(cosh t − 1) reaches
	// this value; the integrand is below e^-cutoff of its t=0 value there.
	besselCutoff = 60.0
	// besselNodes is the number of trapezoid intervals. The integrand is
	// analytic in a strip around the real axis, so the rule converges
	// geometrically and this count is far beyond double precision.
	besselNodes = 512
)

// BesselKScaled returns e^y · K_ν(y), the exponentially scaled modified
// Bessel function of the second kind, for |ν| ≤ 2 and y ≳ 1e-200 (below
// that cosh(νt) overflows at the end of the integration range).
//
// It integrates the representation
//
//	K_ν(y) = ∫₀^∞ exp(−y cosh t) cosh(νt) dt
//
// with the trapezoid rule after factoring out e^−y. Returns +Inf for y == 0
// and NaN for negative or NaN y.
func BesselKScaled(nu, y float64) float64 {
	switch {
	case math.IsNaN(y) || y < 0:
		return math.NaN()
	case y == 0:
		return math.Inf(1)
	case math.IsInf(y, 1):
		return 0
	}

	tMax := math.Acosh(1 + besselCutoff/y)
	h := tMax / besselNodes

	sum := 0.5 // t = 0: exp(0)·cosh(0)
	for i := 1; i <= besselNodes; i++ {
		t := h * float64(i)
		v := math.Exp(-y*(math.Cosh(t)-1)) * math.Cosh(nu*t)
		if i == besselNodes {
			v *= 0.5
		}
		sum += v
	}

	return sum * h
}

// BesselK returns K_ν(y). For large y prefer BesselKScaled to avoid
// underflow.
func BesselK(nu, y float64) float64 {
	return BesselKScaled(nu, y) * math.Exp(-y)
}

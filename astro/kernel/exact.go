package kernel

import (
	"math"

	"github.com/cwbudde/algo-sed/internal/specfunc"
)

const (
	// asymptoteX is where Exact switches to its small-argument limit; the
	// next term is O(x^{2/3}) relative and the Bessel integrals would
	// overflow long before the limit stops being exact.
	asymptoteX = 1e-14
	// asymptoteCoef is lim R(x)/x^{1/3} for x → 0:
	// ½·[Γ(4/3)Γ(1/3)·4^{5/3}/4 − (3/10)·Γ(4/3)²·4^{8/3}/4].
	asymptoteCoef = 1.808418021102803
)

// Exact returns the pitch-angle-averaged synchrotron kernel
//
//	R(x) = (x²/2) · [K_{4/3}(x/2) K_{1/3}(x/2) − (3/10) x (K²_{4/3}(x/2) − K²_{1/3}(x/2))]
//
// (Crusius & Schlickeiser 1986). Each call integrates two Bessel functions.
func Exact(x float64) float64 {
	if !inDomain(x) {
		return 0
	}
	if x < asymptoteX {
		return asymptoteCoef * math.Cbrt(x)
	}

	// Scaled Bessel functions carry e^{x/2} each; the product restores e^{−x}.
	y := 0.5 * x
	k43 := specfunc.BesselKScaled(4.0/3.0, y)
	k13 := specfunc.BesselKScaled(1.0/3.0, y)

	r := 0.5 * x * x * (k43*k13 - 0.3*x*(k43*k43-k13*k13)) * math.Exp(-x)
	if !(r > 0) {
		return 0
	}
	return r
}

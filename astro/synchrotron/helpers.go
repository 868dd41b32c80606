package synchrotron

import (
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
)

// attenuationSeriesLimit is the optical depth below which Attenuation uses
// its Taylor series.
const attenuationSeriesLimit = 1e-3

// NuSynchPeak returns the characteristic synchrotron frequency
// eB/(2π mₑ c)·γ² in Hz of an electron with Lorentz factor gamma in a field
// of b gauss.
func NuSynchPeak(b, gamma float64) float64 {
	return core.ElementaryCharge * b / (2 * math.Pi * core.ElectronMass * core.SpeedOfLight) * gamma * gamma
}

// EpsilonB returns the field in units of the critical field, B/B_cr.
func EpsilonB(b float64) float64 {
	return b / core.CriticalField
}

// CriticalEnergy returns ε_c = 3 e B h γ² / (4π mₑ² c³), the dimensionless
// photon energy the kernel argument is measured against.
func CriticalEnergy(b, gamma float64) float64 {
	const c3 = core.SpeedOfLight * core.SpeedOfLight * core.SpeedOfLight
	return 3 * core.ElementaryCharge * b * core.Planck * gamma * gamma /
		(4 * math.Pi * core.ElectronMass * core.ElectronMass * c3)
}

// Attenuation returns the escape fraction 3u(τ)/τ of a uniform sphere of
// optical depth τ (measured along a diameter), with
//
//	u(τ) = 1/2 + e^−τ/τ − (1 − e^−τ)/τ².
//
// It is 1 at τ = 0, decreases monotonically, and falls as 3/(2τ) for large τ.
// Non-positive τ returns 1; NaN is passed through.
func Attenuation(tau float64) float64 {
	switch {
	case math.IsNaN(tau):
		return tau
	case tau <= 0:
		return 1
	case tau < attenuationSeriesLimit:
		return 1 - tau*(3.0/8-tau*(1.0/10-tau/48))
	case math.IsInf(tau, 1):
		return 0
	}

	e := math.Exp(-tau)
	u := 0.5 + e/tau - (1-e)/(tau*tau)

	return 3 * u / tau
}

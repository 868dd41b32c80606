package electrons

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/internal/quad"
)

// integralIntervals is the Simpson interval count used by WeightedIntegral.
const integralIntervals = 2000

// Distribution is an electron energy distribution n(γ).
type Distribution interface {
	// Eval returns n(γ) ≥ 0, zero outside Support.
	Eval(gamma float64) float64
	// SSAIntegrand returns γ² ∂/∂γ[n(γ)/γ²], zero outside Support.
	SSAIntegrand(gamma float64) float64
	// Support returns the Lorentz factor range [γ_min, γ_max].
	Support() (min, max float64)
}

// Sample fills dst[i] = d.Eval(gamma[i]).
func Sample(d Distribution, dst, gamma []float64) {
	if len(dst) != len(gamma) {
		panic("electrons: dst and gamma must have same length")
	}
	for i, g := range gamma {
		dst[i] = d.Eval(g)
	}
}

// SampleSSA fills dst[i] = d.SSAIntegrand(gamma[i]).
func SampleSSA(d Distribution, dst, gamma []float64) {
	if len(dst) != len(gamma) {
		panic("electrons: dst and gamma must have same length")
	}
	for i, g := range gamma {
		dst[i] = d.SSAIntegrand(g)
	}
}

// WeightedIntegral returns ∫ weight(γ)·n(γ) dγ over [gmin, gmax] clipped to
// the support of d. A nil weight integrates n itself.
func WeightedIntegral(d Distribution, weight func(float64) float64, gmin, gmax float64) float64 {
	lo, hi := d.Support()
	gmin = math.Max(gmin, lo)
	gmax = math.Min(gmax, hi)
	if !(gmin < gmax) {
		return 0
	}

	integrand := d.Eval
	if weight != nil {
		integrand = func(g float64) float64 {
			return weight(g) * d.Eval(g)
		}
	}

	return quad.SimpsonLog(integrand, gmin, gmax, integralIntervals)
}

// Density returns the number density ∫ n dγ in cm⁻³.
func Density(d Distribution) float64 {
	lo, hi := d.Support()
	return WeightedIntegral(d, nil, lo, hi)
}

// EnergyDensity returns the energy density mₑc² ∫ γ n dγ in erg cm⁻³.
func EnergyDensity(d Distribution) float64 {
	lo, hi := d.Support()
	return core.ElectronRestEnergy * WeightedIntegral(d, func(g float64) float64 { return g }, lo, hi)
}

func inSupport(gamma, lo, hi float64) bool {
	return gamma >= lo && gamma <= hi
}

func validateSupport(shape string, gmin, gmax float64) error {
	if !(gmin > 0) || !core.IsFinite(gmax) {
		return fmt.Errorf("electrons: %w: %s support [%v, %v] must be positive and finite",
			core.ErrConfiguration, shape, gmin, gmax)
	}
	if gmin >= gmax {
		return fmt.Errorf("electrons: %w: %s gamma_min %v must be below gamma_max %v",
			core.ErrConfiguration, shape, gmin, gmax)
	}
	return nil
}

func validateFinite(shape string, names []string, values ...float64) error {
	for i, v := range values {
		if !core.IsFinite(v) {
			return fmt.Errorf("electrons: %w: %s %s = %v must be finite",
				core.ErrConfiguration, shape, names[i], v)
		}
	}
	return nil
}

func validateK(shape string, k float64) error {
	if !(k >= 0) || math.IsInf(k, 1) {
		return fmt.Errorf("electrons: %w: %s normalization k = %v must be non-negative and finite",
			core.ErrConfiguration, shape, k)
	}
	return nil
}

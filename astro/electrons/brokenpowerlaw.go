package electrons

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
)

// BrokenPowerLaw is a power law with index P1 below GammaB and P2 from
// GammaB on, continuous at the break:
//
//	n(γ) = K γ^−P1                   γ < γ_b
//	n(γ) = K γ_b^(P2−P1) γ^−P2       γ ≥ γ_b
type BrokenPowerLaw struct {
	K        float64
	P1       float64
	P2       float64
	GammaB   float64
	GammaMin float64
	GammaMax float64
}

// NewBrokenPowerLaw validates and returns a broken power-law distribution.
// The break may lie outside the support, in which case one branch is unused.
func NewBrokenPowerLaw(k, p1, p2, gammaB, gammaMin, gammaMax float64) (*BrokenPowerLaw, error) {
	if err := validateK("broken power law", k); err != nil {
		return nil, err
	}
	if err := validateFinite("broken power law", []string{"p1", "p2"}, p1, p2); err != nil {
		return nil, err
	}
	if !(gammaB > 0) || math.IsInf(gammaB, 1) {
		return nil, fmt.Errorf("electrons: %w: broken power law gamma_b = %v must be positive and finite",
			core.ErrConfiguration, gammaB)
	}
	if err := validateSupport("broken power law", gammaMin, gammaMax); err != nil {
		return nil, err
	}
	return &BrokenPowerLaw{K: k, P1: p1, P2: p2, GammaB: gammaB, GammaMin: gammaMin, GammaMax: gammaMax}, nil
}

// Eval returns n(γ).
func (d *BrokenPowerLaw) Eval(gamma float64) float64 {
	if !inSupport(gamma, d.GammaMin, d.GammaMax) {
		return 0
	}
	if gamma < d.GammaB {
		return d.K * math.Pow(gamma, -d.P1)
	}
	return d.K * math.Pow(d.GammaB, d.P2-d.P1) * math.Pow(gamma, -d.P2)
}

// SSAIntegrand returns −(P+2) n(γ)/γ with the index of the active branch.
// At the break the upper branch is used.
func (d *BrokenPowerLaw) SSAIntegrand(gamma float64) float64 {
	if !inSupport(gamma, d.GammaMin, d.GammaMax) {
		return 0
	}
	if gamma < d.GammaB {
		return -(d.P1 + 2) * d.K * math.Pow(gamma, -d.P1-1)
	}
	return -(d.P2 + 2) * d.K * math.Pow(d.GammaB, d.P2-d.P1) * math.Pow(gamma, -d.P2-1)
}

// Support returns [GammaMin, GammaMax].
func (d *BrokenPowerLaw) Support() (min, max float64) {
	return d.GammaMin, d.GammaMax
}

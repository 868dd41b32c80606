package electrons

import "math"

// PowerLaw is n(γ) = K γ^−P on [GammaMin, GammaMax].
type PowerLaw struct {
	K        float64
	P        float64
	GammaMin float64
	GammaMax float64
}

// NewPowerLaw validates and returns a power-law distribution.
func NewPowerLaw(k, p, gammaMin, gammaMax float64) (*PowerLaw, error) {
	if err := validateK("power law", k); err != nil {
		return nil, err
	}
	if err := validateFinite("power law", []string{"p"}, p); err != nil {
		return nil, err
	}
	if err := validateSupport("power law", gammaMin, gammaMax); err != nil {
		return nil, err
	}
	return &PowerLaw{K: k, P: p, GammaMin: gammaMin, GammaMax: gammaMax}, nil
}

// Eval returns n(γ).
func (d *PowerLaw) Eval(gamma float64) float64 {
	if !inSupport(gamma, d.GammaMin, d.GammaMax) {
		return 0
	}
	return d.K * math.Pow(gamma, -d.P)
}

// SSAIntegrand returns −(P+2) K γ^−(P+1).
func (d *PowerLaw) SSAIntegrand(gamma float64) float64 {
	if !inSupport(gamma, d.GammaMin, d.GammaMax) {
		return 0
	}
	return -(d.P + 2) * d.K * math.Pow(gamma, -d.P-1)
}

// Support returns [GammaMin, GammaMax].
func (d *PowerLaw) Support() (min, max float64) {
	return d.GammaMin, d.GammaMax
}

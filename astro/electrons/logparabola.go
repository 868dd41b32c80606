package electrons

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
)

// LogParabola is n(γ) = K (γ/γ0)^−(P + Q log10(γ/γ0)) on [GammaMin, GammaMax].
type LogParabola struct {
	K        float64
	P        float64
	Q        float64
	Gamma0   float64
	GammaMin float64
	GammaMax float64
}

// NewLogParabola validates and returns a log-parabola distribution.
func NewLogParabola(k, p, q, gamma0, gammaMin, gammaMax float64) (*LogParabola, error) {
	if err := validateK("log parabola", k); err != nil {
		return nil, err
	}
	if err := validateFinite("log parabola", []string{"p", "q"}, p, q); err != nil {
		return nil, err
	}
	if !(gamma0 > 0) || math.IsInf(gamma0, 1) {
		return nil, fmt.Errorf("electrons: %w: log parabola gamma_0 = %v must be positive and finite",
			core.ErrConfiguration, gamma0)
	}
	if err := validateSupport("log parabola", gammaMin, gammaMax); err != nil {
		return nil, err
	}
	return &LogParabola{K: k, P: p, Q: q, Gamma0: gamma0, GammaMin: gammaMin, GammaMax: gammaMax}, nil
}

// Eval returns n(γ).
func (d *LogParabola) Eval(gamma float64) float64 {
	if !inSupport(gamma, d.GammaMin, d.GammaMax) {
		return 0
	}
	ratio := gamma / d.Gamma0
	return d.K * math.Pow(ratio, -(d.P + d.Q*math.Log10(ratio)))
}

// SSAIntegrand returns −(P + 2Q log10(γ/γ0) + 2) n(γ)/γ, from the local
// logarithmic slope d ln n / d ln γ = −(P + 2Q log10(γ/γ0)).
func (d *LogParabola) SSAIntegrand(gamma float64) float64 {
	if !inSupport(gamma, d.GammaMin, d.GammaMax) {
		return 0
	}
	slope := -(d.P + 2*d.Q*math.Log10(gamma/d.Gamma0))
	return (slope - 2) * d.Eval(gamma) / gamma
}

// Support returns [GammaMin, GammaMax].
func (d *LogParabola) Support() (min, max float64) {
	return d.GammaMin, d.GammaMax
}

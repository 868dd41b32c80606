package electrons

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
)

// Kind names a distribution shape.
type Kind string

// Built-in shapes.
const (
	KindPowerLaw       Kind = "PowerLaw"
	KindBrokenPowerLaw Kind = "BrokenPowerLaw"
	KindLogParabola    Kind = "LogParabola"
)

// NormType selects what the normalization value of a Spec fixes.
type NormType string

const (
	// NormDensity fixes ∫ n dγ, in cm⁻³. The default.
	NormDensity NormType = "density"
	// NormEnergyDensity fixes mₑc² ∫ γ n dγ, in erg cm⁻³.
	NormEnergyDensity NormType = "energy_density"
	// NormTotalEnergy fixes the total electron energy in the emission
	// volume, in erg.
	NormTotalEnergy NormType = "total_energy"
	// NormDifferential takes the value as the constant k itself, in cm⁻³.
	NormDifferential NormType = "differential"
)

// Params holds the shape parameters. Each shape reads only its own fields.
type Params struct {
	P        float64 `yaml:"p,omitempty" json:"p,omitempty"`
	P1       float64 `yaml:"p1,omitempty" json:"p1,omitempty"`
	P2       float64 `yaml:"p2,omitempty" json:"p2,omitempty"`
	Q        float64 `yaml:"q,omitempty" json:"q,omitempty"`
	GammaB   float64 `yaml:"gamma_b,omitempty" json:"gamma_b,omitempty"`
	Gamma0   float64 `yaml:"gamma_0,omitempty" json:"gamma_0,omitempty"`
	GammaMin float64 `yaml:"gamma_min" json:"gamma_min"`
	GammaMax float64 `yaml:"gamma_max" json:"gamma_max"`
}

// Spec describes a normalized electron distribution.
type Spec struct {
	Type     Kind     `yaml:"type" json:"type"`
	Norm     float64  `yaml:"norm" json:"norm"`
	NormType NormType `yaml:"norm_type,omitempty" json:"norm_type,omitempty"`
	Params   Params   `yaml:"parameters" json:"parameters"`
}

// Build resolves spec against DefaultRegistry. volume is the emission
// volume in cm³ and is only read for NormTotalEnergy.
func Build(spec Spec, volume float64) (Distribution, error) {
	return BuildWith(DefaultRegistry, spec, volume)
}

// BuildWith resolves spec against reg.
func BuildWith(reg *Registry, spec Spec, volume float64) (Distribution, error) {
	if reg == nil {
		return nil, fmt.Errorf("electrons: %w: nil registry", core.ErrConfiguration)
	}
	factory := reg.Lookup(spec.Type)
	if factory == nil {
		return nil, fmt.Errorf("electrons: %w: unknown distribution type %q", core.ErrConfiguration, spec.Type)
	}
	if !(spec.Norm > 0) || math.IsInf(spec.Norm, 1) {
		return nil, fmt.Errorf("electrons: %w: normalization %v must be positive and finite", core.ErrConfiguration, spec.Norm)
	}

	normType := spec.NormType
	if normType == "" {
		normType = NormDensity
	}

	if normType == NormDifferential {
		return factory(spec.Norm, spec.Params)
	}

	unit, err := factory(1, spec.Params)
	if err != nil {
		return nil, err
	}

	var target, moment float64
	switch normType {
	case NormDensity:
		target = spec.Norm
		moment = Density(unit)
	case NormEnergyDensity:
		target = spec.Norm
		moment = EnergyDensity(unit)
	case NormTotalEnergy:
		if !(volume > 0) || math.IsInf(volume, 1) {
			return nil, fmt.Errorf("electrons: %w: total energy normalization needs a positive volume, got %v",
				core.ErrConfiguration, volume)
		}
		target = spec.Norm / volume
		moment = EnergyDensity(unit)
	default:
		return nil, fmt.Errorf("electrons: %w: unknown normalization type %q", core.ErrConfiguration, normType)
	}

	if !(moment > 0) || math.IsInf(moment, 1) {
		return nil, fmt.Errorf("electrons: %w: normalization integral of %s is %v", core.ErrNumerical, spec.Type, moment)
	}

	return factory(target/moment, spec.Params)
}

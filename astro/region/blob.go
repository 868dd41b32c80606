package region

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/astro/electrons"
	"github.com/cwbudde/algo-sed/internal/quad"
)

// Params are the geometric and kinematic parameters of a blob.
type Params struct {
	// Radius in cm.
	Radius float64 `yaml:"radius" json:"radius"`
	// Redshift z ≥ 0.
	Redshift float64 `yaml:"redshift" json:"redshift"`
	// Doppler factor δ_D > 0.
	Doppler float64 `yaml:"doppler" json:"doppler"`
	// Lorentz is the bulk Lorentz factor Γ ≥ 1.
	Lorentz float64 `yaml:"lorentz" json:"lorentz"`
	// B is the magnetic field in G.
	B float64 `yaml:"b" json:"b"`
}

// Validate reports an error wrapping core.ErrConfiguration for parameters
// that do not describe a physical blob.
func (p Params) Validate() error {
	switch {
	case !(p.Radius > 0) || math.IsInf(p.Radius, 1):
		return fmt.Errorf("region: %w: radius %v must be positive and finite", core.ErrConfiguration, p.Radius)
	case !(p.Redshift >= 0) || math.IsInf(p.Redshift, 1):
		return fmt.Errorf("region: %w: redshift %v must be non-negative and finite", core.ErrConfiguration, p.Redshift)
	case !(p.Doppler > 0) || math.IsInf(p.Doppler, 1):
		return fmt.Errorf("region: %w: Doppler factor %v must be positive and finite", core.ErrConfiguration, p.Doppler)
	case !(p.Lorentz >= 1) || math.IsInf(p.Lorentz, 1):
		return fmt.Errorf("region: %w: bulk Lorentz factor %v must be at least 1", core.ErrConfiguration, p.Lorentz)
	case !(p.B >= 0) || math.IsInf(p.B, 1):
		return fmt.Errorf("region: %w: magnetic field %v must be non-negative and finite", core.ErrConfiguration, p.B)
	}
	return nil
}

// Blob is a validated, immutable emission region.
type Blob struct {
	params   Params
	spec     electrons.Spec
	dist     electrons.Distribution
	distance float64
	gamma    []float64
}

// NewBlob validates p, resolves the electron spec, and derives the
// luminosity distance. A blob at z = 0 needs [WithLuminosityDistance].
func NewBlob(p Params, spec electrons.Spec, opts ...Option) (*Blob, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dist, err := electrons.BuildWith(cfg.registry, spec, sphereVolume(p.Radius))
	if err != nil {
		return nil, err
	}

	return newBlob(p, spec, dist, cfg)
}

// NewBlobWithDistribution is like NewBlob but takes an already normalized
// distribution.
func NewBlobWithDistribution(p Params, dist electrons.Distribution, opts ...Option) (*Blob, error) {
	if dist == nil {
		return nil, fmt.Errorf("region: %w: nil electron distribution", core.ErrConfiguration)
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return newBlob(p, electrons.Spec{}, dist, cfg)
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

func newBlob(p Params, spec electrons.Spec, dist electrons.Distribution, cfg config) (*Blob, error) {
	distance := cfg.distance
	if distance == 0 {
		if p.Redshift == 0 {
			return nil, fmt.Errorf("region: %w: redshift 0 needs an explicit luminosity distance", core.ErrConfiguration)
		}
		distance = cfg.cosmo.LuminosityDistance(p.Redshift)
	}

	gmin, gmax := dist.Support()

	return &Blob{
		params:   p,
		spec:     spec,
		dist:     dist,
		distance: distance,
		gamma:    quad.LogGrid(gmin, gmax, cfg.gammaSize),
	}, nil
}

func sphereVolume(r float64) float64 {
	return 4.0 / 3.0 * math.Pi * r * r * r
}

// Params returns the blob parameters.
func (b *Blob) Params() Params { return b.params }

// Spec returns the electron spec the blob was built from. It is the zero
// Spec for blobs built by NewBlobWithDistribution.
func (b *Blob) Spec() electrons.Spec { return b.spec }

// Electrons returns the normalized electron distribution.
func (b *Blob) Electrons() electrons.Distribution { return b.dist }

// Radius returns R_b in cm.
func (b *Blob) Radius() float64 { return b.params.Radius }

// Redshift returns z.
func (b *Blob) Redshift() float64 { return b.params.Redshift }

// Doppler returns δ_D.
func (b *Blob) Doppler() float64 { return b.params.Doppler }

// Lorentz returns the bulk Lorentz factor Γ.
func (b *Blob) Lorentz() float64 { return b.params.Lorentz }

// B returns the magnetic field in G.
func (b *Blob) B() float64 { return b.params.B }

// LuminosityDistance returns d_L in cm.
func (b *Blob) LuminosityDistance() float64 { return b.distance }

// Volume returns the comoving volume 4/3 π R_b³ in cm³.
func (b *Blob) Volume() float64 { return sphereVolume(b.params.Radius) }

// Beta returns the bulk speed in units of c, sqrt(1 − 1/Γ²).
func (b *Blob) Beta() float64 {
	g := b.params.Lorentz
	return math.Sqrt(1 - 1/(g*g))
}

// Gamma returns a copy of the Lorentz factor grid.
func (b *Blob) Gamma() []float64 {
	out := make([]float64, len(b.gamma))
	copy(out, b.gamma)
	return out
}

// GammaSize returns the number of grid nodes.
func (b *Blob) GammaSize() int { return len(b.gamma) }

// NumberDensity returns ∫ n dγ in cm⁻³.
func (b *Blob) NumberDensity() float64 { return electrons.Density(b.dist) }

// TotalNumber returns the number of electrons in the blob.
func (b *Blob) TotalNumber() float64 { return b.NumberDensity() * b.Volume() }

// ElectronEnergyDensity returns mₑc² ∫ γ n dγ in erg cm⁻³.
func (b *Blob) ElectronEnergyDensity() float64 { return electrons.EnergyDensity(b.dist) }

// TotalElectronEnergy returns the electron energy in the blob in erg.
func (b *Blob) TotalElectronEnergy() float64 { return b.ElectronEnergyDensity() * b.Volume() }

// MagneticEnergyDensity returns B²/8π in erg cm⁻³.
func (b *Blob) MagneticEnergyDensity() float64 {
	return b.params.B * b.params.B / (8 * math.Pi)
}

// EquipartitionRatio returns U_e/U_B, +Inf for a field-free blob.
func (b *Blob) EquipartitionRatio() float64 {
	ub := b.MagneticEnergyDensity()
	if ub == 0 {
		return math.Inf(1)
	}
	return b.ElectronEnergyDensity() / ub
}

// String summarizes the blob parameters.
func (b *Blob) String() string {
	return fmt.Sprintf("blob(R=%.3e cm, z=%.4g, d_L=%.3e cm, δ_D=%.4g, Γ=%.4g, B=%.4g G, %d γ nodes)",
		b.params.Radius, b.params.Redshift, b.distance, b.params.Doppler, b.params.Lorentz, b.params.B, len(b.gamma))
}

package synchrotron

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/astro/electrons"
	"github.com/cwbudde/algo-sed/astro/kernel"
	"github.com/cwbudde/algo-sed/astro/region"
	"github.com/cwbudde/algo-sed/internal/quad"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// sqrt3e3 is √3 e³.
var sqrt3e3 = math.Sqrt(3) * core.ElementaryCharge * core.ElementaryCharge * core.ElementaryCharge

// Synchrotron evaluates the synchrotron emission of one blob.
type Synchrotron struct {
	blob *region.Blob
	cfg  config

	invGamma2 []float64 // 1/γ²
	wn        []float64 // trapezoid weight · n(γ)
	wssa      []float64 // trapezoid weight · γ² ∂γ(n/γ²)

	xScale     float64 // x = xScale · ε′ / γ²
	emisScale  float64 // √3 e³ B / h
	fluxScale  float64 // δ_D⁴ V / (4π d_L²)
	absorbPref float64 // −(λ_c/c)³ / (8π mₑ)
}

// New precomputes the quadrature state for blob.
func New(blob *region.Blob, opts ...Option) (*Synchrotron, error) {
	if blob == nil {
		return nil, fmt.Errorf("synchrotron: %w: nil blob", core.ErrConfiguration)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	gamma := blob.Gamma()
	n := len(gamma)
	w := quad.TrapezoidWeights(gamma)

	s := &Synchrotron{
		blob:      blob,
		cfg:       cfg,
		invGamma2: make([]float64, n),
		wn:        make([]float64, n),
		wssa:      make([]float64, n),
	}

	for i, g := range gamma {
		s.invGamma2[i] = 1 / (g * g)
	}

	dist := blob.Electrons()
	electrons.Sample(dist, s.wn, gamma)
	vecmath.MulBlockInPlace(s.wn, w)
	electrons.SampleSSA(dist, s.wssa, gamma)
	vecmath.MulBlockInPlace(s.wssa, w)

	b := blob.B()
	d := blob.Doppler()
	dl := blob.LuminosityDistance()
	lc := core.ComptonWavelength / core.SpeedOfLight

	s.xScale = 1 / CriticalEnergy(b, 1)
	s.emisScale = sqrt3e3 * b / core.Planck
	s.fluxScale = d * d * d * d * blob.Volume() / (4 * math.Pi * dl * dl)
	s.absorbPref = -lc * lc * lc / (8 * math.Pi * core.ElectronMass)

	return s, nil
}

// Blob returns the emission region.
func (s *Synchrotron) Blob() *region.Blob { return s.blob }

// SSA reports whether self-absorption is enabled.
func (s *Synchrotron) SSA() bool { return s.cfg.ssa }

// scratch holds the per-goroutine kernel buffers.
type scratch struct {
	x []float64
	r []float64
}

func (s *Synchrotron) newScratch() *scratch {
	n := len(s.invGamma2)
	return &scratch{x: make([]float64, n), r: make([]float64, n)}
}

// kernelAt fills sc.r with R(x_i) for blob-frame energy eps.
func (s *Synchrotron) kernelAt(sc *scratch, eps float64) {
	if s.blob.B() == 0 {
		clear(sc.r)
		return
	}
	vecmath.ScaleBlock(sc.x, s.invGamma2, s.xScale*eps)
	kernel.EvaluateWith(s.cfg.kernel, sc.r, sc.x)
}

// emissivity returns ε′j(ε′) with sc.r already filled.
func (s *Synchrotron) emissivity(sc *scratch, eps float64) float64 {
	return s.emisScale * eps * vecmath.DotProduct(s.wn, sc.r)
}

// absorption returns κ(ε′) with sc.r already filled, clamped to κ ≥ 0.
func (s *Synchrotron) absorption(sc *scratch, eps float64) float64 {
	// Divide by ε′ twice: ε′² underflows long before κ overflows.
	k := s.absorbPref * s.emisScale * vecmath.DotProduct(s.wssa, sc.r) / eps / eps
	if !(k > 0) {
		return 0
	}
	return k
}

// Emissivity returns ε′ j(ε′) in erg s⁻¹ cm⁻³ for each blob-frame photon
// energy in eps.
func (s *Synchrotron) Emissivity(eps []float64) ([]float64, error) {
	return s.evaluate("eps", eps, func(sc *scratch, i int) float64 {
		s.kernelAt(sc, eps[i])
		return s.emissivity(sc, eps[i])
	})
}

// AbsorptionCoefficient returns κ(ε′) in cm⁻¹ for each blob-frame photon
// energy in eps. Negative values, possible where n(γ) rises faster than γ²,
// are clamped to 0.
func (s *Synchrotron) AbsorptionCoefficient(eps []float64) ([]float64, error) {
	return s.evaluate("eps", eps, func(sc *scratch, i int) float64 {
		s.kernelAt(sc, eps[i])
		return s.absorption(sc, eps[i])
	})
}

// OpticalDepth returns τ = 2 κ R_b for each blob-frame photon energy.
func (s *Synchrotron) OpticalDepth(eps []float64) ([]float64, error) {
	diameter := 2 * s.blob.Radius()
	return s.evaluate("eps", eps, func(sc *scratch, i int) float64 {
		s.kernelAt(sc, eps[i])
		return diameter * s.absorption(sc, eps[i])
	})
}

// SEDFlux returns νFν in erg cm⁻² s⁻¹ for each observed frequency in Hz.
// The whole call fails with core.ErrDomain if any frequency is not positive
// and finite.
func (s *Synchrotron) SEDFlux(nu []float64) ([]float64, error) {
	diameter := 2 * s.blob.Radius()

	eps := make([]float64, len(nu))
	core.EnergiesFromFrequencies(eps, nu)
	vecmath.ScaleBlockInPlace(eps, core.BlobFrameEnergy(1, s.blob.Redshift(), s.blob.Doppler()))

	return s.evaluate("nu", nu, func(sc *scratch, i int) float64 {
		s.kernelAt(sc, eps[i])
		f := s.fluxScale * s.emissivity(sc, eps[i])
		if s.cfg.ssa {
			f *= Attenuation(diameter * s.absorption(sc, eps[i]))
		}
		return f
	})
}

// SEDLuminosity returns the isotropic-equivalent νLν = 4π d_L² νFν in
// erg s⁻¹ for each observed frequency in Hz.
func (s *Synchrotron) SEDLuminosity(nu []float64) ([]float64, error) {
	out, err := s.SEDFlux(nu)
	if err != nil {
		return nil, err
	}
	dl := s.blob.LuminosityDistance()
	vecmath.ScaleBlockInPlace(out, 4*math.Pi*dl*dl)
	return out, nil
}

// evaluate fills out[i] = fn(sc, i) for every index of in. Inputs are
// validated before any work starts;
// the grid is split into contiguous chunks, one goroutine and scratch
// buffer per chunk.
func (s *Synchrotron) evaluate(name string, in []float64, fn func(*scratch, int) float64) ([]float64, error) {
	if err := core.CheckPositive(name, in); err != nil {
		return nil, fmt.Errorf("synchrotron: %w", err)
	}

	out := make([]float64, len(in))
	run := func(lo, hi int) error {
		sc := s.newScratch()
		for i := lo; i < hi; i++ {
			v := fn(sc, i)
			if !core.IsFinite(v) || v < 0 {
				return fmt.Errorf("synchrotron: %w: %s[%d] = %v gives %v", core.ErrNumerical, name, i, in[i], v)
			}
			out[i] = v
		}
		return nil
	}

	workers := min(s.cfg.workers, len(in))
	if workers <= 1 {
		if err := run(0, len(in)); err != nil {
			return nil, err
		}
		return out, nil
	}

	chunk := (len(in) + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < len(in); lo += chunk {
		hi := min(lo+chunk, len(in))
		g.Go(func() error { return run(lo, hi) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

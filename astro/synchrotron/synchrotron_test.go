package synchrotron

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/astro/cosmology"
	"github.com/cwbudde/algo-sed/astro/electrons"
	"github.com/cwbudde/algo-sed/astro/kernel"
	"github.com/cwbudde/algo-sed/astro/region"
	"github.com/cwbudde/algo-sed/internal/testutil"
)

// powerLawBlob is the power-law blob of Dermer & Menon (2009), Fig. 7.4,
// placed at a luminosity distance of 1e27 cm.
func powerLawBlob(t testing.TB, opts ...region.Option) *region.Blob {
	t.Helper()

	z, err := cosmology.Planck15.RedshiftAtDistance(1e27)
	if err != nil {
		t.Fatal(err)
	}

	b, err := region.NewBlob(
		region.Params{Radius: 1e16, Redshift: z, Doppler: 10, Lorentz: 10, B: 1},
		electrons.Spec{
			Type:     electrons.KindPowerLaw,
			Norm:     1e48,
			NormType: electrons.NormTotalEnergy,
			Params:   electrons.Params{P: 2.8, GammaMin: 1e2, GammaMax: 1e5},
		},
		append([]region.Option{region.WithLuminosityDistance(1e27)}, opts...)...,
	)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// ssaBlob is the compact, weakly magnetized blob used for the
// self-absorbed spectra.
func ssaBlob(t testing.TB, kind electrons.Kind, p electrons.Params) *region.Blob {
	t.Helper()

	b, err := region.NewBlob(
		region.Params{Radius: 5e15, Redshift: 0.1, Doppler: 10, Lorentz: 10, B: 0.1},
		electrons.Spec{Type: kind, Norm: 100, NormType: electrons.NormDensity, Params: p},
	)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func ssaShapes() map[electrons.Kind]electrons.Params {
	return map[electrons.Kind]electrons.Params{
		electrons.KindPowerLaw:       {P: 2, GammaMin: 2, GammaMax: 1e6},
		electrons.KindBrokenPowerLaw: {P1: 2, P2: 3, GammaB: 1e4, GammaMin: 2, GammaMax: 1e6},
		electrons.KindLogParabola:    {P: 2, Q: 0.4, Gamma0: 1e4, GammaMin: 2, GammaMax: 1e6},
	}
}

func mustNew(t testing.TB, b *region.Blob, opts ...Option) *Synchrotron {
	t.Helper()
	s, err := New(b, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustFlux(t testing.TB, s *Synchrotron, nu []float64) []float64 {
	t.Helper()
	f, err := s.SEDFlux(nu)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestPowerLawSED(t *testing.T) {
	s := mustNew(t, powerLawBlob(t))

	nu := []float64{1e9, 1e11, 1e13, 1e15, 1e17, 1e19}
	want := []float64{
		1.940474087742e-14,
		6.811256747454e-12,
		5.915348707908e-11,
		9.367497398310e-11,
		1.214711612522e-10,
		2.484868397827e-21,
	}

	got := mustFlux(t, s, nu)
	for i := range nu {
		testutil.RequireRelNear(t, "νFν", got[i], want[i], 1e-6)
	}

	// Between the critical frequencies of γ_min and γ_max the thin spectrum
	// is νFν ∝ ν^{(3−p)/2} = ν^{0.1}.
	if slope := testutil.LogSlope(nu[2], got[2], nu[3], got[3]); math.Abs(slope-0.1) > 2e-3 {
		t.Fatalf("thin slope = %v, want 0.1", slope)
	}
}

func TestSelfAbsorbedSEDs(t *testing.T) {
	nu := []float64{1e8, 1e9, 1e10, 1e11, 1e13, 1e15, 1e17, 1e19}
	tests := []struct {
		kind      electrons.Kind
		thin, ssa []float64
	}{
		{
			kind: electrons.KindPowerLaw,
			thin: []float64{1.460245803018e-18, 4.620182112331e-18, 1.461029740094e-17, 4.620178952877e-17,
				4.620032316930e-16, 4.613239573599e-15, 4.312819014965e-14, 1.678349943557e-14},
			ssa: []float64{1.580133641924e-24, 4.989355608764e-21, 9.164111034060e-18, 4.617773059620e-17,
				4.620032314523e-16, 4.613239573599e-15, 4.312819014965e-14, 1.678349943557e-14},
		},
		{
			kind: electrons.KindBrokenPowerLaw,
			thin: []float64{1.460386338842e-18, 4.620579022202e-18, 1.461052413309e-17, 4.618037682199e-17,
				4.503733984725e-16, 2.023699033473e-15, 2.030121155094e-15, 1.929865891867e-16},
			ssa: []float64{1.580130831696e-24, 4.989295207374e-21, 9.163880748266e-18, 4.615632951299e-17,
				4.503733982381e-16, 2.023699033473e-15, 2.030121155094e-15, 1.929865891867e-16},
		},
		{
			kind: electrons.KindLogParabola,
			thin: []float64{6.531899361916e-19, 1.143859944383e-17, 1.661243399046e-16, 1.873119750198e-15,
				9.162067003578e-14, 1.025351153279e-12, 2.287433190893e-12, 1.470264648584e-13},
			ssa: []float64{2.227750209157e-23, 3.514834401412e-20, 5.629935116824e-17, 1.857996127706e-15,
				9.162066302230e-14, 1.025351153279e-12, 2.287433190893e-12, 1.470264648584e-13},
		},
	}

	shapes := ssaShapes()
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			b := ssaBlob(t, tt.kind, shapes[tt.kind])
			thin := mustFlux(t, mustNew(t, b), nu)
			ssa := mustFlux(t, mustNew(t, b, WithSSA(true)), nu)
			for i := range nu {
				testutil.RequireRelNear(t, "thin νFν", thin[i], tt.thin[i], 1e-6)
				testutil.RequireRelNear(t, "ssa νFν", ssa[i], tt.ssa[i], 1e-6)
			}
		})
	}
}

func TestSelfAbsorptionTurnover(t *testing.T) {
	b := ssaBlob(t, electrons.KindPowerLaw, ssaShapes()[electrons.KindPowerLaw])
	s := mustNew(t, b, WithSSA(true))

	f := mustFlux(t, s, []float64{1e8, 1e9})
	// Optically thick power law: Fν ∝ ν^{5/2}, so νFν ∝ ν^{7/2}.
	if slope := testutil.LogSlope(1e8, f[0], 1e9, f[1]); math.Abs(slope-3.5) > 0.05 {
		t.Fatalf("thick slope = %v, want 3.5", slope)
	}
}

func TestSelfAbsorptionNeverAmplifies(t *testing.T) {
	nu := core.LogSpace(1e6, 1e22, 161)
	for kind, p := range ssaShapes() {
		b := ssaBlob(t, kind, p)
		thin := mustFlux(t, mustNew(t, b), nu)
		ssa := mustFlux(t, mustNew(t, b, WithSSA(true)), nu)
		for i := range nu {
			if ssa[i] > thin[i] {
				t.Fatalf("%s: ν=%v: ssa %v > thin %v", kind, nu[i], ssa[i], thin[i])
			}
		}
	}
}

func TestSelfAbsorptionVanishesForThinSource(t *testing.T) {
	b, err := region.NewBlob(
		region.Params{Radius: 5e15, Redshift: 0.1, Doppler: 10, Lorentz: 10, B: 0.1},
		electrons.Spec{
			Type:   electrons.KindPowerLaw,
			Norm:   1e-12,
			Params: electrons.Params{P: 2, GammaMin: 2, GammaMax: 1e6},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	nu := []float64{1e9, 1e11, 1e15}
	thin := mustFlux(t, mustNew(t, b), nu)
	ssa := mustFlux(t, mustNew(t, b, WithSSA(true)), nu)
	for i := range nu {
		testutil.RequireRelNear(t, "ssa/thin", ssa[i], thin[i], 1e-6)
	}
}

func TestSEDFiniteNonNegative(t *testing.T) {
	nu := core.LogSpace(1, 1e30, 301)
	blobs := []*region.Blob{powerLawBlob(t)}
	for kind, p := range ssaShapes() {
		blobs = append(blobs, ssaBlob(t, kind, p))
	}

	for _, b := range blobs {
		for _, ssa := range []bool{false, true} {
			f := mustFlux(t, mustNew(t, b, WithSSA(ssa)), nu)
			testutil.RequireFinite(t, f)
			testutil.RequireNonNegative(t, f)
		}
	}
}

func TestSEDZeroFarAboveCutoff(t *testing.T) {
	s := mustNew(t, powerLawBlob(t), WithSSA(true))
	f := mustFlux(t, s, []float64{1e25, 1e30, 1e40})
	for i, v := range f {
		if v != 0 {
			t.Fatalf("flux[%d] = %v, want 0", i, v)
		}
	}

	eps := []float64{1e10, 1e20}
	for name, fn := range map[string]func([]float64) ([]float64, error){
		"emissivity": s.Emissivity,
		"absorption": s.AbsorptionCoefficient,
		"tau":        s.OpticalDepth,
	} {
		got, err := fn(eps)
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range got {
			if v != 0 {
				t.Fatalf("%s[%d] = %v, want 0", name, i, v)
			}
		}
	}
}

func TestSEDIdempotent(t *testing.T) {
	b := ssaBlob(t, electrons.KindLogParabola, ssaShapes()[electrons.KindLogParabola])
	s := mustNew(t, b, WithSSA(true))
	nu := core.LogSpace(1e8, 1e20, 97)

	first := mustFlux(t, s, nu)
	second := mustFlux(t, s, nu)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("index %d: %v != %v", i, first[i], second[i])
		}
	}
}

func TestWorkersMatchSequential(t *testing.T) {
	b := ssaBlob(t, electrons.KindBrokenPowerLaw, ssaShapes()[electrons.KindBrokenPowerLaw])
	nu := core.LogSpace(1e8, 1e20, 101)

	want := mustFlux(t, mustNew(t, b, WithSSA(true)), nu)
	for _, workers := range []int{0, 2, 3, 7, 200} {
		got := mustFlux(t, mustNew(t, b, WithSSA(true), WithWorkers(workers)), nu)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d index %d: %v != %v", workers, i, got[i], want[i])
			}
		}
	}
}

func TestFluxFromEmissivity(t *testing.T) {
	b := powerLawBlob(t)
	s := mustNew(t, b)

	nu := []float64{1e12, 1e16}
	eps := make([]float64, len(nu))
	for i, v := range nu {
		eps[i] = core.BlobFrameEnergy(core.EnergyFromFrequency(v), b.Redshift(), b.Doppler())
	}

	emis, err := s.Emissivity(eps)
	if err != nil {
		t.Fatal(err)
	}
	flux := mustFlux(t, s, nu)
	scale := math.Pow(b.Doppler(), 4) * b.Volume() / (4 * math.Pi * 1e54)
	for i := range nu {
		testutil.RequireRelNear(t, "νFν", flux[i], scale*emis[i], 1e-12)
	}
}

func TestOpticalDepthAndAttenuation(t *testing.T) {
	b := ssaBlob(t, electrons.KindPowerLaw, ssaShapes()[electrons.KindPowerLaw])
	thin := mustNew(t, b)
	s := mustNew(t, b, WithSSA(true))

	nu := []float64{1e9, 1e10, 1e11}
	eps := make([]float64, len(nu))
	for i, v := range nu {
		eps[i] = core.BlobFrameEnergy(core.EnergyFromFrequency(v), b.Redshift(), b.Doppler())
	}

	kappa, err := s.AbsorptionCoefficient(eps)
	if err != nil {
		t.Fatal(err)
	}
	tau, err := s.OpticalDepth(eps)
	if err != nil {
		t.Fatal(err)
	}

	f0 := mustFlux(t, thin, nu)
	f1 := mustFlux(t, s, nu)
	for i := range nu {
		testutil.RequireRelNear(t, "τ", tau[i], 2*b.Radius()*kappa[i], 1e-15)
		testutil.RequireRelNear(t, "ssa νFν", f1[i], f0[i]*Attenuation(tau[i]), 1e-12)
	}
	if !(tau[0] > tau[1] && tau[1] > tau[2]) {
		t.Fatalf("τ must fall with frequency: %v", tau)
	}
	if !(tau[0] > 1 && tau[2] < 1) {
		t.Fatalf("expected an optically thick to thin transition: %v", tau)
	}
}

func TestSEDLuminosity(t *testing.T) {
	s := mustNew(t, powerLawBlob(t))
	nu := []float64{1e10, 1e14}

	flux := mustFlux(t, s, nu)
	lum, err := s.SEDLuminosity(nu)
	if err != nil {
		t.Fatal(err)
	}
	for i := range nu {
		testutil.RequireRelNear(t, "νLν", lum[i], 4*math.Pi*1e54*flux[i], 1e-14)
	}
}

func TestTabulatedKernelAgrees(t *testing.T) {
	b := powerLawBlob(t)
	nu := core.LogSpace(1e9, 1e17, 17)

	approx := mustFlux(t, mustNew(t, b), nu)
	exact := mustFlux(t, mustNew(t, b, WithKernel(kernel.Tabulated)), nu)
	for i := range nu {
		testutil.RequireRelNear(t, "νFν", exact[i], approx[i], 1e-2)
	}
}

func TestZeroField(t *testing.T) {
	b, err := region.NewBlob(
		region.Params{Radius: 1e16, Redshift: 0.1, Doppler: 10, Lorentz: 10},
		electrons.Spec{Type: electrons.KindPowerLaw, Norm: 1, Params: electrons.Params{P: 2, GammaMin: 10, GammaMax: 1e4}},
	)
	if err != nil {
		t.Fatal(err)
	}

	f := mustFlux(t, mustNew(t, b, WithSSA(true)), []float64{1e8, 1e12, 1e16})
	for i, v := range f {
		if v != 0 {
			t.Fatalf("flux[%d] = %v, want 0 without a field", i, v)
		}
	}
}

func TestAbsorptionAtTinyEnergies(t *testing.T) {
	b := ssaBlob(t, electrons.KindPowerLaw, ssaShapes()[electrons.KindPowerLaw])
	s := mustNew(t, b, WithSSA(true))

	eps := []float64{1e-120, 1e-170}
	kappa, err := s.AbsorptionCoefficient(eps)
	if err != nil {
		t.Fatal(err)
	}
	tau, err := s.OpticalDepth(eps)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireFinite(t, kappa)
	testutil.RequireFinite(t, tau)

	// Far below every critical energy R(x) ∝ x^{1/3}, so κ ∝ ε′^{−5/3}.
	testutil.RequireRelNear(t, "κ ratio", kappa[1]/kappa[0], math.Pow(10, 250.0/3), 1e-9)
	testutil.RequireRelNear(t, "τ", tau[1], 2*b.Radius()*kappa[1], 1e-15)
}

func TestSEDFluxDomainErrors(t *testing.T) {
	s := mustNew(t, powerLawBlob(t))
	for _, bad := range []float64{0, -1e9, math.NaN(), math.Inf(1)} {
		_, err := s.SEDFlux([]float64{1e9, bad, 1e12})
		if !errors.Is(err, core.ErrDomain) {
			t.Fatalf("ν=%v: err = %v, want ErrDomain", bad, err)
		}
	}
	if _, err := s.Emissivity([]float64{-1}); !errors.Is(err, core.ErrDomain) {
		t.Fatalf("emissivity: err = %v, want ErrDomain", err)
	}

	out, err := s.SEDFlux(nil)
	if err != nil || len(out) != 0 {
		t.Fatalf("empty grid: %v, %v", out, err)
	}
}

func TestNewErrors(t *testing.T) {
	b := powerLawBlob(t)
	tests := []struct {
		name string
		blob *region.Blob
		opts []Option
	}{
		{"nil blob", nil, nil},
		{"nil kernel", b, []Option{WithKernel(nil)}},
		{"negative workers", b, []Option{WithWorkers(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.blob, tt.opts...); !errors.Is(err, core.ErrConfiguration) {
				t.Fatalf("err = %v, want ErrConfiguration", err)
			}
		})
	}

	s := mustNew(t, b, nil, WithSSA(true))
	if !s.SSA() || s.Blob() != b {
		t.Fatal("options not applied")
	}
}

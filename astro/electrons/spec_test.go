package electrons

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/internal/testutil"
)

func TestBuildDensityNormalization(t *testing.T) {
	d, err := Build(Spec{
		Type:     KindPowerLaw,
		Norm:     100,
		NormType: NormDensity,
		Params:   Params{P: 2, GammaMin: 2, GammaMax: 1e6},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}

	pl, ok := d.(*PowerLaw)
	if !ok {
		t.Fatalf("Build returned %T, want *PowerLaw", d)
	}
	testutil.RequireRelNear(t, "k", pl.K, 100/(0.5-1e-6), 1e-9)
	testutil.RequireRelNear(t, "density", Density(d), 100, 1e-9)
}

func TestBuildDefaultsToDensity(t *testing.T) {
	d, err := Build(Spec{Type: KindPowerLaw, Norm: 3, Params: Params{P: 2.5, GammaMin: 10, GammaMax: 1e4}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireRelNear(t, "density", Density(d), 3, 1e-9)
}

func TestBuildTotalEnergyNormalization(t *testing.T) {
	volume := 4.0 / 3.0 * math.Pi * 1e48
	d, err := Build(Spec{
		Type:     KindPowerLaw,
		Norm:     1e48,
		NormType: NormTotalEnergy,
		Params:   Params{P: 2.8, GammaMin: 1e2, GammaMax: 1e5},
	}, volume)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRelNear(t, "W_e", EnergyDensity(d)*volume, 1e48, 1e-9)

	wantK := 1e48 / volume / (core.ElectronRestEnergy * (math.Pow(1e2, -0.8) - math.Pow(1e5, -0.8)) / 0.8)
	testutil.RequireRelNear(t, "k", d.(*PowerLaw).K, wantK, 1e-9)
}

func TestBuildEnergyDensityNormalization(t *testing.T) {
	d, err := Build(Spec{
		Type:     KindLogParabola,
		Norm:     2e-3,
		NormType: NormEnergyDensity,
		Params:   Params{P: 2, Q: 0.4, Gamma0: 1e4, GammaMin: 2, GammaMax: 1e6},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireRelNear(t, "u_e", EnergyDensity(d), 2e-3, 1e-9)
}

func TestBuildBrokenPowerLawDensity(t *testing.T) {
	d, err := Build(Spec{
		Type:   KindBrokenPowerLaw,
		Norm:   100,
		Params: Params{P1: 2, P2: 3, GammaB: 1e4, GammaMin: 2, GammaMax: 1e6},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}

	// Analytic ∫ n dγ for unit k, split at the break.
	unit := (1/2.0 - 1e-4) + 1e4*(math.Pow(1e4, -2)-math.Pow(1e6, -2))/2
	testutil.RequireRelNear(t, "k", d.(*BrokenPowerLaw).K, 100/unit, 1e-8)
}

func TestBuildDifferential(t *testing.T) {
	d, err := Build(Spec{
		Type:     KindPowerLaw,
		Norm:     42,
		NormType: NormDifferential,
		Params:   Params{P: 2, GammaMin: 1, GammaMax: 10},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d.Eval(1) != 42 {
		t.Fatalf("n(1) = %v, want 42", d.Eval(1))
	}
}

func TestBuildErrors(t *testing.T) {
	valid := Params{P: 2, GammaMin: 1, GammaMax: 10}
	tests := []struct {
		name   string
		spec   Spec
		volume float64
		want   error
	}{
		{"unknown type", Spec{Type: "Maxwellian", Norm: 1, Params: valid}, 1, core.ErrConfiguration},
		{"zero norm", Spec{Type: KindPowerLaw, Norm: 0, Params: valid}, 1, core.ErrConfiguration},
		{"negative norm", Spec{Type: KindPowerLaw, Norm: -1, Params: valid}, 1, core.ErrConfiguration},
		{"NaN norm", Spec{Type: KindPowerLaw, Norm: math.NaN(), Params: valid}, 1, core.ErrConfiguration},
		{"unknown norm type", Spec{Type: KindPowerLaw, Norm: 1, NormType: "luminosity", Params: valid}, 1, core.ErrConfiguration},
		{"total energy no volume", Spec{Type: KindPowerLaw, Norm: 1, NormType: NormTotalEnergy, Params: valid}, 0, core.ErrConfiguration},
		{"bad support", Spec{Type: KindPowerLaw, Norm: 1, Params: Params{P: 2, GammaMin: 10, GammaMax: 1}}, 1, core.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.spec, tt.volume)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildWithNilRegistry(t *testing.T) {
	spec := Spec{Type: KindPowerLaw, Norm: 1, Params: Params{P: 2, GammaMin: 1, GammaMax: 10}}
	if _, err := BuildWith(nil, spec, 0); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestRegistryCustomShape(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("Flat", func(k float64, p Params) (Distribution, error) {
		return NewPowerLaw(k, 0, p.GammaMin, p.GammaMax)
	})

	d, err := BuildWith(reg, Spec{Type: "Flat", Norm: 9, Params: Params{GammaMin: 1, GammaMax: 10}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireRelNear(t, "n", d.Eval(5), 1, 1e-9)

	if err := reg.Register("Flat", func(float64, Params) (Distribution, error) { return nil, nil }); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := reg.Register("", nil); err == nil {
		t.Fatal("expected empty kind error")
	}
	if err := reg.Register("Other", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
}

func TestDefaultRegistryKinds(t *testing.T) {
	kinds := DefaultRegistry.Kinds()
	want := []Kind{KindBrokenPowerLaw, KindLogParabola, KindPowerLaw}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

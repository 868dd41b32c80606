package region

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/astro/cosmology"
	"github.com/cwbudde/algo-sed/astro/electrons"
)

// DefaultGammaSize is the default number of Lorentz factor grid nodes.
const DefaultGammaSize = 200

const minGammaSize = 2

type config struct {
	gammaSize int
	distance  float64 // >0 overrides the cosmological distance
	cosmo     cosmology.FlatLambdaCDM
	registry  *electrons.Registry
}

func defaultConfig() config {
	return config{
		gammaSize: DefaultGammaSize,
		cosmo:     cosmology.Planck15,
		registry:  electrons.DefaultRegistry,
	}
}

// Option configures a [Blob].
type Option func(*config) error

// WithGammaSize sets the number of log-spaced Lorentz factor nodes
// (default 200, at least 2).
func WithGammaSize(n int) Option {
	return func(cfg *config) error {
		if n < minGammaSize {
			return fmt.Errorf("region: %w: gamma grid size %d below %d", core.ErrConfiguration, n, minGammaSize)
		}

		cfg.gammaSize = n

		return nil
	}
}

// WithLuminosityDistance fixes the luminosity distance in cm instead of
// deriving it from the redshift.
func WithLuminosityDistance(d float64) Option {
	return func(cfg *config) error {
		if !(d > 0) || math.IsInf(d, 1) {
			return fmt.Errorf("region: %w: luminosity distance %v must be positive and finite", core.ErrConfiguration, d)
		}

		cfg.distance = d

		return nil
	}
}

// WithCosmology selects the cosmology used to derive the luminosity
// distance from the redshift (default [cosmology.Planck15]).
func WithCosmology(c cosmology.FlatLambdaCDM) Option {
	return func(cfg *config) error {
		if err := c.Validate(); err != nil {
			return err
		}

		cfg.cosmo = c

		return nil
	}
}

// WithRegistry resolves the electron spec against reg instead of
// [electrons.DefaultRegistry].
func WithRegistry(reg *electrons.Registry) Option {
	return func(cfg *config) error {
		if reg == nil {
			return fmt.Errorf("region: %w: nil electron registry", core.ErrConfiguration)
		}

		cfg.registry = reg

		return nil
	}
}

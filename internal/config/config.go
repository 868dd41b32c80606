// Package config provides the YAML run configuration of the synchsed tool.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/astro/cosmology"
	"github.com/cwbudde/algo-sed/astro/electrons"
	"github.com/cwbudde/algo-sed/astro/kernel"
	"github.com/cwbudde/algo-sed/astro/region"
	"github.com/cwbudde/algo-sed/astro/synchrotron"
	"github.com/cwbudde/algo-sed/internal/logging"
	"gopkg.in/yaml.v3"
)

// Version is the configuration format version written by Save.
const Version = "1"

// Config is the main run configuration.
type Config struct {
	// Version is the configuration format version.
	Version string `yaml:"version"`

	// Blob describes the emission region.
	Blob BlobConfig `yaml:"blob"`

	// Electrons describes the electron distribution.
	Electrons electrons.Spec `yaml:"electrons"`

	// Synchrotron selects the radiative options.
	Synchrotron SynchrotronConfig `yaml:"synchrotron"`

	// Grid is the observed frequency grid.
	Grid GridConfig `yaml:"grid"`

	// Logging contains logging configuration.
	Logging logging.Config `yaml:"logging"`
}

// BlobConfig contains the emission region parameters.
type BlobConfig struct {
	region.Params `yaml:",inline"`

	// LuminosityDistance in cm overrides the distance derived from the
	// redshift when positive.
	LuminosityDistance float64 `yaml:"luminosity_distance,omitempty"`

	// Cosmology derives the distance from the redshift.
	Cosmology cosmology.FlatLambdaCDM `yaml:"cosmology"`

	// GammaSize is the number of Lorentz factor grid nodes.
	GammaSize int `yaml:"gamma_size"`
}

// SynchrotronConfig contains the emission options.
type SynchrotronConfig struct {
	// SSA enables self-absorption.
	SSA bool `yaml:"ssa"`

	// Kernel is approx, tabulated or exact.
	Kernel string `yaml:"kernel"`

	// Workers is the number of goroutines; 0 selects GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// GridConfig describes a log-spaced frequency grid.
type GridConfig struct {
	// NuMin and NuMax bound the grid in Hz.
	NuMin float64 `yaml:"nu_min"`
	NuMax float64 `yaml:"nu_max"`

	// Points is the number of frequencies, both ends included.
	Points int `yaml:"points"`
}

// Default returns the self-absorbed power-law blob configuration.
func Default() *Config {
	return &Config{
		Version: Version,
		Blob: BlobConfig{
			Params: region.Params{
				Radius:   5e15,
				Redshift: 0.1,
				Doppler:  10,
				Lorentz:  10,
				B:        0.1,
			},
			Cosmology: cosmology.Planck15,
			GammaSize: region.DefaultGammaSize,
		},
		Electrons: electrons.Spec{
			Type:     electrons.KindPowerLaw,
			Norm:     100,
			NormType: electrons.NormDensity,
			Params:   electrons.Params{P: 2, GammaMin: 2, GammaMax: 1e6},
		},
		Synchrotron: SynchrotronConfig{
			SSA:    true,
			Kernel: "approx",
		},
		Grid: GridConfig{
			NuMin:  1e8,
			NuMax:  1e20,
			Points: 121,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a YAML file. Keys missing from the file
// keep their Default values; a missing file yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w: %w", core.ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Encode writes the configuration as YAML to w.
func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return enc.Close()
}

// Validate checks the settings that are not validated by the domain
// constructors. Errors wrap core.ErrConfiguration.
func (c *Config) Validate() error {
	if c.Version != Version {
		return fmt.Errorf("config: %w: unsupported version %q", core.ErrConfiguration, c.Version)
	}
	if err := c.Blob.Params.Validate(); err != nil {
		return err
	}
	if err := c.Blob.Cosmology.Validate(); err != nil {
		return err
	}
	if _, err := kernel.Lookup(c.Synchrotron.Kernel); err != nil {
		return err
	}
	if c.Synchrotron.Workers < 0 {
		return fmt.Errorf("config: %w: workers %d must be non-negative", core.ErrConfiguration, c.Synchrotron.Workers)
	}
	g := c.Grid
	if !(g.NuMin > 0) || !(g.NuMax > g.NuMin) || math.IsInf(g.NuMax, 1) || g.Points < 2 {
		return fmt.Errorf("config: %w: grid [%v, %v] Hz with %d points", core.ErrConfiguration, g.NuMin, g.NuMax, g.Points)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w: %w", core.ErrConfiguration, err)
	}
	return nil
}

// NewBlob builds the emission region.
func (c *Config) NewBlob() (*region.Blob, error) {
	opts := []region.Option{region.WithCosmology(c.Blob.Cosmology)}
	if c.Blob.GammaSize != 0 {
		opts = append(opts, region.WithGammaSize(c.Blob.GammaSize))
	}
	if c.Blob.LuminosityDistance > 0 {
		opts = append(opts, region.WithLuminosityDistance(c.Blob.LuminosityDistance))
	}
	return region.NewBlob(c.Blob.Params, c.Electrons, opts...)
}

// NewSynchrotron builds the blob and its synchrotron evaluator.
func (c *Config) NewSynchrotron() (*synchrotron.Synchrotron, error) {
	blob, err := c.NewBlob()
	if err != nil {
		return nil, err
	}
	k, err := kernel.Lookup(c.Synchrotron.Kernel)
	if err != nil {
		return nil, err
	}
	return synchrotron.New(blob,
		synchrotron.WithSSA(c.Synchrotron.SSA),
		synchrotron.WithKernel(k),
		synchrotron.WithWorkers(c.Synchrotron.Workers),
	)
}

// Frequencies returns the observed frequency grid in Hz.
func (c *Config) Frequencies() []float64 {
	return core.LogSpace(c.Grid.NuMin, c.Grid.NuMax, c.Grid.Points)
}

package synchrotron

import (
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/astro/kernel"
)

type config struct {
	ssa     bool
	kernel  kernel.Func
	workers int
}

func defaultConfig() config {
	return config{
		kernel:  kernel.Approx,
		workers: 1,
	}
}

// Option configures a [Synchrotron].
type Option func(*config) error

// WithSSA enables or disables synchrotron self-absorption (default off).
func WithSSA(enabled bool) Option {
	return func(cfg *config) error {
		cfg.ssa = enabled
		return nil
	}
}

// WithKernel selects the single-electron kernel (default [kernel.Approx]).
func WithKernel(f kernel.Func) Option {
	return func(cfg *config) error {
		if f == nil {
			return fmt.Errorf("synchrotron: %w: nil kernel", core.ErrConfiguration)
		}

		cfg.kernel = f

		return nil
	}
}

// WithWorkers sets how many goroutines share an array evaluation
// (default 1). Zero selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("synchrotron: %w: worker count %d must be non-negative", core.ErrConfiguration, n)
		}

		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}

		cfg.workers = n

		return nil
	}
}

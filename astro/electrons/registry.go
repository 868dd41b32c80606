package electrons

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Factory builds a distribution of one shape with normalization constant k.
type Factory func(k float64, p Params) (Distribution, error)

// Registry maps shape kinds to their factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[Kind]Factory
}

var errDuplicateKind = errors.New("duplicate distribution kind")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Kind]Factory)}
}

// Register adds a factory for the given kind.
func (r *Registry) Register(kind Kind, factory Factory) error {
	if kind == "" {
		return errors.New("empty distribution kind")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %s", errDuplicateKind, kind)
	}

	r.factories[kind] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind Kind, factory Factory) {
	err := r.Register(kind, factory)
	if err != nil {
		panic("electrons registry: " + err.Error())
	}
}

// Lookup returns the factory for the given kind, or nil.
func (r *Registry) Lookup(kind Kind) Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.factories[kind]
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// DefaultRegistry holds the built-in shapes and is used by Build.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(KindPowerLaw, func(k float64, p Params) (Distribution, error) {
		return NewPowerLaw(k, p.P, p.GammaMin, p.GammaMax)
	})
	r.MustRegister(KindBrokenPowerLaw, func(k float64, p Params) (Distribution, error) {
		return NewBrokenPowerLaw(k, p.P1, p.P2, p.GammaB, p.GammaMin, p.GammaMax)
	})
	r.MustRegister(KindLogParabola, func(k float64, p Params) (Distribution, error) {
		return NewLogParabola(k, p.P, p.Q, p.Gamma0, p.GammaMin, p.GammaMax)
	})
	return r
}

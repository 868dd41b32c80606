package kernel

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-sed/astro/core"
)

var byName = map[string]Func{
	"approx":    Approx,
	"tabulated": Tabulated,
	"exact":     Exact,
}

// Lookup returns the kernel registered under name: "approx", "tabulated"
// or "exact".
func Lookup(name string) (Func, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("kernel: %w: unknown kernel %q", core.ErrConfiguration, name)
	}
	return f, nil
}

// Names returns the kernel names accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

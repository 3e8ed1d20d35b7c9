// Package registry collects the composed variants of a service at process
// start and refuses to start on a malformed catalog.
//
// Registration is the definition-time boundary of the library: every
// definition error a composition deferred is surfaced here, before any
// request is processed. After registration the registry is effectively
// read-only and safe for concurrent lookups.
//
// Registries also produce portable snapshots of the registered contract so
// the services of a multi-service backend can verify they agree on the
// schema they share (see snapshot.go).
package registry

import (
	"sort"
	"sync"

	"github.com/audialab/syrinx"
	"github.com/audialab/syrinx/variant"
)

// Registry holds composed variants by name.
type Registry struct {
	mu       sync.RWMutex
	variants map[string]*variant.Variant
	order    []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{variants: make(map[string]*variant.Variant)}
}

// Register adds variants to the registry. Nil variants and duplicate names
// are definition errors; all errors in one call are aggregated and nothing
// from a failing call is registered.
func (r *Registry) Register(vs ...*variant.Variant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var errs []error
	seen := make(map[string]bool, len(vs))
	for _, v := range vs {
		switch {
		case v == nil:
			errs = append(errs, syrinx.NewDefinitionError("", "", "cannot register nil variant", nil))
		case seen[v.Name()]:
			errs = append(errs, syrinx.NewDefinitionError(v.Name(), "", "variant registered twice", nil))
		case r.variants[v.Name()] != nil:
			errs = append(errs, syrinx.NewDefinitionError(v.Name(), "", "variant already registered", nil))
		default:
			seen[v.Name()] = true
		}
	}
	if err := syrinx.NewAggregateError(errs...); err != nil {
		return err
	}
	for _, v := range vs {
		r.variants[v.Name()] = v
		r.order = append(r.order, v.Name())
	}
	return nil
}

// Variant returns the registered variant with the given name.
func (r *Registry) Variant(name string) (*variant.Variant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.variants[name]
	return v, ok
}

// Variants returns the registered variants in registration order.
func (r *Registry) Variants() []*variant.Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vs := make([]*variant.Variant, len(r.order))
	for i, name := range r.order {
		vs[i] = r.variants[name]
	}
	return vs
}

// Names returns the registered variant names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}

// Len returns the number of registered variants.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

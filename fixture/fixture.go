// Package fixture provides a build-once registry for shared benchmark
// fixtures. Expensive read-only containers are constructed a single
// time per process and handed out to every trial body that asks for
// them, so lookup, range-query and iteration benchmarks measure only
// the operation itself rather than O(n) construction.
package fixture

import "fmt"

type state int

const (
	notBuilt state = iota
	built
)

type entry struct {
	state  state
	value  any
	builds int
}

// Registry caches named fixtures. It is owned by the suite entry
// point and passed to trial bodies; there are no package-level
// statics.
//
// The registry is not safe for concurrent use. The trial runtime that
// drives benchmark bodies is required to be single-threaded, which is
// what makes the unsynchronized build-once flag sufficient.
type Registry struct {
	entries map[string]*entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Ensure returns the fixture registered under name, constructing it
// with build on the first call. If build fails the entry stays
// unbuilt and the next call retries; a failed construction is never
// cached as built.
//
// The returned handle is shared. Callers must treat it as read-only:
// benchmarks that mutate a container must build privately or operate
// on a rebuilt copy, never on a registry fixture.
func (r *Registry) Ensure(name string, build func() (any, error)) (any, error) {
	e, ok := r.entries[name]
	if !ok {
		e = &entry{}
		r.entries[name] = e
	}

	if e.state == built {
		return e.value, nil
	}

	value, err := build()
	if err != nil {
		return nil, fmt.Errorf("build fixture %s: %w", name, err)
	}

	e.state = built
	e.value = value
	e.builds++

	return value, nil
}

// Built reports whether the named fixture has been constructed.
func (r *Registry) Built(name string) bool {
	e, ok := r.entries[name]

	return ok && e.state == built
}

// Builds returns how many times the named fixture's build function
// completed. Used by tests to verify the build-once guarantee.
func (r *Registry) Builds(name string) int {
	e, ok := r.entries[name]
	if !ok {
		return 0
	}

	return e.builds
}

// Ensure is the typed form of Registry.Ensure. It fails if the cached
// fixture was registered under the same name with a different type.
func Ensure[T any](r *Registry, name string, build func() (T, error)) (T, error) {
	v, err := r.Ensure(name, func() (any, error) {
		return build()
	})
	if err != nil {
		var zero T

		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		var zero T

		return zero, fmt.Errorf("fixture %s holds %T, not the requested type", name, v)
	}

	return typed, nil
}

// Package registry is a small generic named-item registry: register a
// constructor or value under a name, look it up later, list what's
// available. Generalised with a type parameter so mathjson's operator
// table and any future named-component set can share it instead of each
// hand-rolling the same three functions.
package registry

import "fmt"

// Registry is a name -> value table with a Go-idiomatic Register/Get/Names
// surface.
type Registry[T any] struct {
	items map[string]T
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register adds an item under name, overwriting any previous entry.
func (r *Registry[T]) Register(name string, item T) {
	r.items[name] = item
}

// Get returns the item registered under name, or an error listing the
// known names if there is none.
func (r *Registry[T]) Get(name string) (T, error) {
	item, ok := r.items[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown name: %s (available: %v)", name, r.Names())
	}
	return item, nil
}

// Names returns every registered name.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.items))
	for k := range r.items {
		names = append(names, k)
	}
	return names
}

// Package catalog maps component type names to the Go factories and
// lifecycle hooks that implement them. Manifests reference components by
// type name only; the catalog is where those names are bound to code.
package catalog

import (
	"fmt"
	"sort"

	"github.com/vk/assemblygo/internal/registry"
)

// Entry holds the compiled Go parts of one component type.
type Entry struct {
	Factory registry.Factory
	Init    registry.InitHook
	Destroy registry.DestroyFunc
}

// Module is the interface a built-in module implements to contribute its
// component types to a catalog.
type Module interface {
	Register(c *Catalog)
}

// Catalog is the set of registered component types for one application
// instance.
type Catalog struct {
	entries map[string]Entry
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Add registers a component type. Registering the same type twice is a
// programmer error and panics.
func (c *Catalog) Add(componentType string, entry Entry) {
	if _, exists := c.entries[componentType]; exists {
		panic(fmt.Sprintf("component type %q already registered", componentType))
	}
	if entry.Factory == nil {
		panic(fmt.Sprintf("component type %q registered without a factory", componentType))
	}
	c.entries[componentType] = entry
}

// Lookup returns the entry for a component type.
func (c *Catalog) Lookup(componentType string) (Entry, bool) {
	entry, ok := c.entries[componentType]
	return entry, ok
}

// Types returns every registered type name, sorted.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.entries))
	for name := range c.entries {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// Package kvstore provides an ephemeral, thread-safe key/value store as a
// built-in component type. It uses sync.Map: the key space tends to be
// stable while values change often, which is the access pattern sync.Map is
// optimized for.
package kvstore

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/vk/assemblygo/internal/catalog"
)

// Store is an in-memory key/value map safe for concurrent use.
type Store struct {
	entries sync.Map
	size    atomic.Int64
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Set stores value under key.
func (s *Store) Set(key string, value any) {
	if _, loaded := s.entries.Swap(key, value); !loaded {
		s.size.Add(1)
	}
}

// Get retrieves the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	return s.entries.Load(key)
}

// Delete removes key from the store.
func (s *Store) Delete(key string) {
	if _, loaded := s.entries.LoadAndDelete(key); loaded {
		s.size.Add(-1)
	}
}

// Len reports the number of stored keys.
func (s *Store) Len() int {
	return int(s.size.Load())
}

// clear drops every entry.
func (s *Store) clear() {
	s.entries.Range(func(key, _ any) bool {
		s.entries.Delete(key)
		return true
	})
	s.size.Store(0)
}

// Module registers the "kvstore" component type. Config keys are loaded as
// seed entries, so a manifest can pre-populate the store.
type Module struct{}

// Register implements catalog.Module.
func (Module) Register(c *catalog.Catalog) {
	c.Add("kvstore", catalog.Entry{
		Factory: func(_ context.Context, deps map[string]any) (any, error) {
			s := New()
			for key, value := range deps {
				s.Set(key, value)
			}
			return s, nil
		},
		Destroy: func(_ context.Context, instance any) error {
			instance.(*Store).clear()
			return nil
		},
	})
}

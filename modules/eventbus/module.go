// Package eventbus provides a minimal in-process publish/subscribe bus as a
// built-in component type.
package eventbus

import (
	"context"
	"sync"

	"github.com/vk/assemblygo/internal/catalog"
)

// Bus is a topic-keyed fan-out bus. Handlers run synchronously on the
// publisher's goroutine.
type Bus struct {
	mu     sync.Mutex
	subs   map[string][]func(any)
	closed bool
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[string][]func(any))}
}

// Subscribe registers a handler for a topic. Subscriptions on a closed bus
// are dropped.
func (b *Bus) Subscribe(topic string, fn func(any)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.subs[topic] = append(b.subs[topic], fn)
}

// Publish delivers msg to every handler of topic and reports how many
// handlers ran.
func (b *Bus) Publish(topic string, msg any) int {
	b.mu.Lock()
	handlers := append([]func(any){}, b.subs[topic]...)
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(msg)
	}
	return len(handlers)
}

// Close drops all subscriptions.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[string][]func(any))
	b.closed = true
}

// Module registers the "eventbus" component type.
type Module struct{}

// Register implements catalog.Module.
func (Module) Register(c *catalog.Catalog) {
	c.Add("eventbus", catalog.Entry{
		Factory: func(context.Context, map[string]any) (any, error) {
			return New(), nil
		},
		Destroy: func(_ context.Context, instance any) error {
			instance.(*Bus).Close()
			return nil
		},
	})
}

// FromDeps finds the first Bus among a component's resolved collaborators.
func FromDeps(deps map[string]any) (*Bus, bool) {
	for _, v := range deps {
		if bus, ok := v.(*Bus); ok {
			return bus, true
		}
	}
	return nil, false
}

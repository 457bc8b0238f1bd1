// Package stats provides an in-memory counter collector as a built-in
// component type. Its Bus field is attached by a post-init wiring rule, not
// by an ordinary dependency, so manifests can join it to a bus declared
// anywhere in the assembly.
package stats

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/assemblygo/internal/catalog"
	"github.com/vk/assemblygo/internal/registry"

	"github.com/vk/assemblygo/modules/eventbus"
)

// Collector accumulates named counters.
type Collector struct {
	// Bus is late-bound by wiring; it may stay nil when the assembly has no
	// bus to attach.
	Bus *eventbus.Bus

	mu     sync.Mutex
	counts map[string]int
}

// Observe increments the counter for name.
func (c *Collector) Observe(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[name]++
}

// Snapshot returns the counters as "name=count" lines, sorted by name.
func (c *Collector) Snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.counts))
	for name := range c.counts {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s=%d", name, c.counts[name])
	}
	return lines
}

// AnnounceTo publishes the current snapshot on the wired bus, if any.
func (c *Collector) AnnounceTo(topic string) int {
	if c.Bus == nil {
		return 0
	}
	return c.Bus.Publish(topic, c.Snapshot())
}

// Module registers the "stats" component type.
type Module struct{}

// Register implements catalog.Module.
func (Module) Register(c *catalog.Catalog) {
	c.Add("stats", catalog.Entry{
		Factory: func(context.Context, map[string]any) (any, error) {
			return &Collector{counts: make(map[string]int)}, nil
		},
		Init: registry.SyncInit(func(instance any) error {
			// Mark startup so a fresh collector is distinguishable from an
			// unused one.
			instance.(*Collector).Observe("collector.started")
			return nil
		}),
	})
}

// Package reporter provides a component that timestamps and publishes
// messages through its collaborators. It exists mainly to exercise
// dependency resolution end to end: it needs both a clock and a bus.
package reporter

import (
	"context"
	"fmt"

	"github.com/vk/assemblygo/internal/catalog"
	"github.com/vk/assemblygo/internal/registry"

	"github.com/vk/assemblygo/modules/clock"
	"github.com/vk/assemblygo/modules/eventbus"
)

// Reporter renders timestamped lines and publishes them on a bus topic.
type Reporter struct {
	prefix string
	topic  string
	clock  *clock.Clock
	bus    *eventbus.Bus

	ready bool
}

// Report publishes one formatted line and returns it.
func (r *Reporter) Report(msg string) string {
	line := fmt.Sprintf("%s %s %s", r.prefix, r.clock.Now(), msg)
	r.bus.Publish(r.topic, line)
	return line
}

// Ready reports whether the initializer has run.
func (r *Reporter) Ready() bool {
	return r.ready
}

// Module registers the "reporter" component type. Config:
//
//	prefix — optional line prefix, defaults to ">".
//	topic  — optional bus topic, defaults to "reports".
type Module struct{}

// Register implements catalog.Module.
func (Module) Register(c *catalog.Catalog) {
	c.Add("reporter", catalog.Entry{
		Factory: func(_ context.Context, deps map[string]any) (any, error) {
			clk, ok := clock.FromDeps(deps)
			if !ok {
				return nil, fmt.Errorf("reporter requires a clock dependency")
			}
			bus, ok := eventbus.FromDeps(deps)
			if !ok {
				return nil, fmt.Errorf("reporter requires an eventbus dependency")
			}

			r := &Reporter{prefix: ">", topic: "reports", clock: clk, bus: bus}
			if raw, ok := deps["prefix"].(string); ok {
				r.prefix = raw
			}
			if raw, ok := deps["topic"].(string); ok {
				r.topic = raw
			}
			return r, nil
		},
		Init: registry.AsyncInit(func(ctx context.Context, instance any) error {
			// The bus and clock are fully initialized by the time this runs;
			// the engine sequences initializers one component at a time.
			if err := ctx.Err(); err != nil {
				return err
			}
			instance.(*Reporter).ready = true
			return nil
		}),
	})
}

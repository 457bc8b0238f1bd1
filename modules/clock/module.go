// Package clock provides a formatted time source as a built-in component
// type.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/assemblygo/internal/catalog"
)

// Clock formats the current time using a fixed layout.
type Clock struct {
	layout string
	now    func() time.Time
}

// Now returns the current time rendered with the configured layout.
func (c *Clock) Now() string {
	return c.now().Format(c.layout)
}

// Module registers the "clock" component type. Config:
//
//	layout — optional Go time layout, defaults to time.RFC3339.
type Module struct{}

// Register implements catalog.Module.
func (Module) Register(c *catalog.Catalog) {
	c.Add("clock", catalog.Entry{
		Factory: func(_ context.Context, deps map[string]any) (any, error) {
			layout := time.RFC3339
			if raw, ok := deps["layout"]; ok {
				s, ok := raw.(string)
				if !ok {
					return nil, fmt.Errorf("clock layout must be a string, got %T", raw)
				}
				layout = s
			}
			return &Clock{layout: layout, now: time.Now}, nil
		},
	})
}

// FromDeps finds the first Clock among a component's resolved collaborators.
func FromDeps(deps map[string]any) (*Clock, bool) {
	for _, v := range deps {
		if clk, ok := v.(*Clock); ok {
			return clk, true
		}
	}
	return nil, false
}

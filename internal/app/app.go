package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/assemblygo/internal/catalog"
	"github.com/vk/assemblygo/internal/ctxlog"
	"github.com/vk/assemblygo/internal/manifest"
	"github.com/vk/assemblygo/internal/registry"
)

// Config holds everything an App instance needs to run.
type Config struct {
	ManifestPath string
	DOTPath      string
	LogFormat    string
	LogLevel     string
}

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   Config
	registry *registry.Registry
}

// NewApp constructs a fully initialized App with its own isolated logger and
// registry: it loads the manifest at cfg.ManifestPath and registers every
// declared component against the given modules (the built-in set when none
// are supplied).
func NewApp(outW io.Writer, cfg Config, modules ...catalog.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	cat := catalog.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(cat)
	}
	logger.Debug("Component catalog populated.", "types", cat.Types())

	m, err := manifest.Load(ctx, cfg.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	reg := registry.New()
	for _, component := range m.Components {
		entry, ok := cat.Lookup(component.Type)
		if !ok {
			return nil, fmt.Errorf("component %q uses unknown type %q (known types: %v)",
				component.Name, component.Type, cat.Types())
		}
		err := reg.Register(component.Name, registry.Declaration{
			Factory:   entry.Factory,
			DependsOn: component.DependsOn,
			Config:    component.Config,
			Init:      entry.Init,
			Destroy:   entry.Destroy,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to register component %q: %w", component.Name, err)
		}
	}

	for _, wire := range m.Wires {
		err := reg.Wire(registry.Rule{
			Target: wire.Target,
			Source: wire.Source,
			Field:  wire.Field,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to declare wiring %q <- %q: %w", wire.Target, wire.Source, err)
		}
	}
	logger.Debug("Registry populated from manifest.",
		"components", len(m.Components), "wires", len(m.Wires))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

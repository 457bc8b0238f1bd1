package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/assemblygo/internal/ctxlog"
	"github.com/vk/assemblygo/internal/graphviz"
	"github.com/vk/assemblygo/internal/registry"
)

// Run drives one assembly cycle: optional DOT export, build, a summary of
// the initialization order, and teardown. The application's logger is
// supplied to components as the external root named "logger", so manifests
// may depend on it without declaring it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.config.DOTPath != "" {
		if err := a.exportDOT(); err != nil {
			return err
		}
	}

	err := a.registry.Build(ctx, registry.WithExternalRoot("logger", a.logger))
	if err != nil {
		// Release whatever was built before the failure.
		a.registry.Destroy(ctx)
		return fmt.Errorf("assembly failed: %w", err)
	}

	for i, name := range a.registry.BuildOrder() {
		fmt.Fprintf(a.outW, "%3d. %s\n", i+1, name)
	}

	a.registry.Destroy(ctx)
	return nil
}

// exportDOT writes the dependency graph to the configured path, or to the
// application output when the path is "-".
func (a *App) exportDOT() error {
	graph := a.registry.DependencyGraph()

	if a.config.DOTPath == "-" {
		return graphviz.DOT(a.outW, graph)
	}

	f, err := os.Create(a.config.DOTPath)
	if err != nil {
		return fmt.Errorf("failed to create DOT file: %w", err)
	}
	defer f.Close()

	if err := graphviz.DOT(f, graph); err != nil {
		return fmt.Errorf("failed to render DOT file: %w", err)
	}
	a.logger.Info("Dependency graph exported.", "path", a.config.DOTPath)
	return nil
}

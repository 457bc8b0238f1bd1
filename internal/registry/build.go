package registry

import (
	"context"

	"github.com/vk/assemblygo/internal/ctxlog"
	"github.com/vk/assemblygo/internal/dag"
)

// BuildOption configures a single Build call.
type BuildOption func(*buildOptions)

type buildOptions struct {
	rootName     string
	rootInstance any
	hasRoot      bool
}

// WithExternalRoot supplies one pre-built instance under the given name.
// Components may depend on that name without the registry constructing it.
// At most one external root is recognized per Build call; a later option
// replaces an earlier one.
func WithExternalRoot(name string, root any) BuildOption {
	return func(o *buildOptions) {
		o.rootName = name
		o.rootInstance = root
		o.hasRoot = true
	}
}

// Build freezes the declaration set and runs the full initialization
// pipeline: cycle detection first (failing fast, before any factory runs),
// then Kahn's-order computation, then a strictly sequential instantiation
// loop, then the post-init wiring pass. On success the registry is built.
//
// Any failure aborts the remaining build and leaves already-built instances
// intact for inspection through GetAll; a second Build on a failed registry
// is a StateError until Destroy and Reset.
func (r *Registry) Build(ctx context.Context, opts ...BuildOption) error {
	logger := ctxlog.FromContext(ctx)

	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateEmpty {
		return StateError{Op: "build", State: r.state}
	}
	r.state = StateBuilding
	logger.Debug("Build started.", "components", len(r.names))

	graph := dag.Build(r.inputs())

	if cycles := graph.Cycles(); len(cycles) > 0 {
		r.state = StateFailed
		logger.Error("Build aborted: dependency cycles detected.", "count", len(cycles))
		return CircularDependencyError{Cycles: cycles}
	}

	order := graph.Order()
	if len(order) < graph.Len() {
		// Defense in depth behind the cycle detector.
		r.state = StateFailed
		return CircularDependencyError{}
	}
	logger.Debug("Initialization order computed.", "order", order)

	for _, name := range order {
		if err := r.instantiate(ctx, name, o); err != nil {
			r.state = StateFailed
			logger.Error("Build aborted.", "component", name, "error", err)
			return err
		}
	}

	if err := r.applyWiring(ctx); err != nil {
		r.state = StateFailed
		logger.Error("Build aborted during wiring pass.", "error", err)
		return err
	}

	r.state = StateBuilt
	logger.Info("Build complete.", "components", len(order))
	return nil
}

// instantiate resolves one component's dependencies, merges them into its
// config bag, invokes its factory, and runs its declared initializer before
// returning. Initialization is strictly sequential across components, so an
// initializer may assume every dependency is fully constructed and
// initialized, not merely constructed. Callers must hold r.mu.
func (r *Registry) instantiate(ctx context.Context, name string, o buildOptions) error {
	logger := ctxlog.FromContext(ctx)
	decl := r.decls[name]

	deps, err := r.resolveDependencies(name, o)
	if err != nil {
		return err
	}

	merged := make(map[string]any, len(decl.decl.Config)+len(deps))
	for key, val := range decl.decl.Config {
		merged[key] = val
	}
	for depName, dep := range deps {
		if _, taken := merged[depName]; taken {
			return ConfigConflictError{Component: name, Key: depName}
		}
		merged[depName] = dep
	}

	inst := &instance{name: name, state: InstanceConstructing}
	r.instances[name] = inst

	logger.Debug("Constructing component.", "name", name)
	object, err := decl.decl.Factory(ctx, merged)
	if err != nil {
		inst.state = InstanceFailed
		return ComponentInitError{Component: name, Err: err}
	}
	inst.object = object

	if err := decl.decl.Init.run(ctx, object); err != nil {
		inst.state = InstanceFailed
		return ComponentInitError{Component: name, Err: err}
	}

	inst.state = InstanceReady
	r.buildOrder = append(r.buildOrder, name)
	logger.Debug("Component ready.", "name", name)
	return nil
}

// resolveDependencies maps each declared dependency of name to its built
// instance, or to the external root when the name matches the one supplied
// to Build. This is the single checkpoint for dependencies that were
// unresolvable at graph-build time. Callers must hold r.mu.
func (r *Registry) resolveDependencies(name string, o buildOptions) (map[string]any, error) {
	decl := r.decls[name]
	deps := make(map[string]any, len(decl.decl.DependsOn))
	for _, depName := range decl.decl.DependsOn {
		if inst, ok := r.instances[depName]; ok && inst.state == InstanceReady {
			deps[depName] = inst.object
			continue
		}
		if o.hasRoot && depName == o.rootName {
			deps[depName] = o.rootInstance
			continue
		}
		return nil, MissingDependencyError{Component: name, Dependency: depName}
	}
	return deps, nil
}

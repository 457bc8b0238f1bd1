package registry

import (
	"fmt"
	"sync"

	"github.com/vk/assemblygo/internal/dag"
)

// Registry owns a set of component declarations and, after a successful
// Build, their singleton instances. The zero value is not usable; construct
// with New.
type Registry struct {
	mu sync.Mutex

	state State
	decls map[string]*declaration
	// names preserves registration order; it is the topological tie-break
	// and the declaration freeze snapshot.
	names []string
	rules []Rule

	instances  map[string]*instance
	buildOrder []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		state:     StateEmpty,
		decls:     make(map[string]*declaration),
		instances: make(map[string]*instance),
	}
}

// Register stores a component declaration unchanged. It fails with
// DuplicateComponentError if the name is taken, and with a StateError once a
// build has started: the declaration set is frozen from the first Build call
// until Reset.
func (r *Registry) Register(name string, decl Declaration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateEmpty {
		return StateError{Op: fmt.Sprintf("register %q", name), State: r.state}
	}
	if name == "" {
		return fmt.Errorf("component name must not be empty")
	}
	if decl.Factory == nil {
		return fmt.Errorf("component %q: factory must not be nil", name)
	}
	if _, exists := r.decls[name]; exists {
		return DuplicateComponentError{Name: name}
	}

	r.decls[name] = &declaration{name: name, decl: decl}
	r.names = append(r.names, name)
	return nil
}

// State reports the registry lifecycle state.
func (r *Registry) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Get returns the built instance for name if it is ready. It never fails:
// unknown names and components that are not (or not yet) ready report ok as
// false.
func (r *Registry) Get(name string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.instances[name]
	if !ok || inst.state != InstanceReady {
		return nil, false
	}
	return inst.object, true
}

// GetAll returns a snapshot of every ready instance keyed by name. The map
// is a copy, not a live view; after a failed build it contains exactly the
// components that were successfully built before the failure.
func (r *Registry) GetAll() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make(map[string]any, len(r.instances))
	for name, inst := range r.instances {
		if inst.state == InstanceReady {
			all[name] = inst.object
		}
	}
	return all
}

// InstanceStateOf reports the lifecycle state of one component. Unknown
// names report ok as false.
func (r *Registry) InstanceStateOf(name string) (InstanceState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inst, ok := r.instances[name]; ok {
		return inst.state, true
	}
	if _, declared := r.decls[name]; declared {
		return InstancePending, true
	}
	return 0, false
}

// BuildOrder returns the names of successfully built components in the
// order they were constructed. After a failed build it covers exactly the
// components that reached ready.
func (r *Registry) BuildOrder() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := make([]string, len(r.buildOrder))
	copy(order, r.buildOrder)
	return order
}

// Graph is a diagnostic snapshot of the dependency graph.
type Graph struct {
	Nodes []string
	Edges []dag.Edge
}

// DependencyGraph returns the nodes and "must be built before" edges implied
// by the current declaration set, for diagnostics and visualization.
func (r *Registry) DependencyGraph() Graph {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := dag.Build(r.inputs())
	return Graph{Nodes: g.Nodes(), Edges: g.Edges()}
}

// inputs converts the stored declarations into graph-builder inputs in
// registration order. Callers must hold r.mu.
func (r *Registry) inputs() []dag.Input {
	inputs := make([]dag.Input, len(r.names))
	for i, name := range r.names {
		inputs[i] = dag.Input{
			Name:      name,
			DependsOn: r.decls[name].decl.DependsOn,
		}
	}
	return inputs
}

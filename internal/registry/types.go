package registry

import "context"

// Factory constructs a component instance. The deps map contains the
// component's config bag merged with its resolved dependency instances,
// keyed by dependency name.
type Factory func(ctx context.Context, deps map[string]any) (any, error)

// InitFunc is a synchronous post-construction initializer.
type InitFunc func(instance any) error

// InitCtxFunc is a blocking initializer that may wait on external work; it
// must honor ctx cancellation.
type InitCtxFunc func(ctx context.Context, instance any) error

// DestroyFunc releases a component instance during teardown.
type DestroyFunc func(ctx context.Context, instance any) error

type initKind int

const (
	initNone initKind = iota
	initSync
	initAsync
)

// InitHook is a tagged initializer variant declared at registration time:
// none, synchronous, or blocking. Declaring the capability up front replaces
// any runtime guessing about how a component initializes.
type InitHook struct {
	kind    initKind
	syncFn  InitFunc
	asyncFn InitCtxFunc
}

// NoInit declares that a component needs no initialization step.
func NoInit() InitHook {
	return InitHook{kind: initNone}
}

// SyncInit declares a synchronous initializer.
func SyncInit(fn InitFunc) InitHook {
	return InitHook{kind: initSync, syncFn: fn}
}

// AsyncInit declares a blocking initializer that receives the build context.
func AsyncInit(fn InitCtxFunc) InitHook {
	return InitHook{kind: initAsync, asyncFn: fn}
}

func (h InitHook) run(ctx context.Context, instance any) error {
	switch h.kind {
	case initSync:
		return h.syncFn(instance)
	case initAsync:
		return h.asyncFn(ctx, instance)
	default:
		return nil
	}
}

// Declaration is the registered recipe for a component before it is built.
type Declaration struct {
	// Factory constructs the instance. Required.
	Factory Factory
	// DependsOn lists collaborator names that must be built first. A name
	// that is never declared may still be satisfied by the external root
	// supplied to Build.
	DependsOn []string
	// Config is an opaque bag merged with resolved dependencies at
	// construction time.
	Config map[string]any
	// Init optionally runs after the factory, before the next component
	// starts. Zero value means no initialization step.
	Init InitHook
	// Destroy optionally releases the instance during teardown.
	Destroy DestroyFunc
}

// InstanceState tracks one component through its lifecycle.
type InstanceState int32

const (
	InstancePending InstanceState = iota
	InstanceConstructing
	InstanceReady
	InstanceFailed
	InstanceDestroyed
)

// String implements fmt.Stringer.
func (s InstanceState) String() string {
	switch s {
	case InstancePending:
		return "pending"
	case InstanceConstructing:
		return "constructing"
	case InstanceReady:
		return "ready"
	case InstanceFailed:
		return "failed"
	case InstanceDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// State is the lifecycle of a whole Registry.
type State int

const (
	StateEmpty State = iota
	StateBuilding
	StateBuilt
	StateFailed
	StateDestroyed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateBuilding:
		return "building"
	case StateBuilt:
		return "built"
	case StateFailed:
		return "failed"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// declaration is the stored form of a registered component.
type declaration struct {
	name string
	decl Declaration
}

// instance is one constructed component owned by the Registry.
type instance struct {
	name   string
	object any
	state  InstanceState
}

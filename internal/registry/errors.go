package registry

import (
	"fmt"
	"strings"
)

// DuplicateComponentError means a component name was registered twice. The
// first registration is left untouched.
type DuplicateComponentError struct {
	Name string
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("component %q is already registered", e.Name)
}

// CircularDependencyError means the declaration set admits no valid build
// order. It carries every independent cycle found in a single detection pass.
type CircularDependencyError struct {
	Cycles [][]string
}

func (e CircularDependencyError) Error() string {
	if len(e.Cycles) == 0 {
		return "circular dependency detected"
	}
	parts := make([]string, len(e.Cycles))
	for i, cycle := range e.Cycles {
		parts[i] = strings.Join(cycle, " -> ")
	}
	return "circular dependency detected: " + strings.Join(parts, "; ")
}

// MissingDependencyError means a declared dependency has no built instance
// and is not the external root supplied to Build.
type MissingDependencyError struct {
	Component  string
	Dependency string
}

func (e MissingDependencyError) Error() string {
	return fmt.Sprintf("component %q depends on %q, which is neither a registered component nor the external root", e.Component, e.Dependency)
}

// ConfigConflictError means a dependency name collides with a key in the
// component's config bag.
type ConfigConflictError struct {
	Component string
	Key       string
}

func (e ConfigConflictError) Error() string {
	return fmt.Sprintf("component %q: dependency name %q collides with a config key", e.Component, e.Key)
}

// ComponentInitError means a factory or initializer failed. The remaining
// build is aborted; already-built instances are retained for inspection.
type ComponentInitError struct {
	Component string
	Err       error
}

func (e ComponentInitError) Error() string {
	return fmt.Sprintf("component %q failed to initialize: %v", e.Component, e.Err)
}

// Unwrap exposes the underlying cause.
func (e ComponentInitError) Unwrap() error {
	return e.Err
}

// WiringError means a post-init wiring rule could not be applied.
type WiringError struct {
	Target string
	Field  string
	Err    error
}

func (e WiringError) Error() string {
	return fmt.Sprintf("wiring %q.%s: %v", e.Target, e.Field, e.Err)
}

// Unwrap exposes the underlying cause.
func (e WiringError) Unwrap() error {
	return e.Err
}

// StateError means an operation was attempted in a registry lifecycle state
// that does not permit it.
type StateError struct {
	Op    string
	State State
}

func (e StateError) Error() string {
	return fmt.Sprintf("cannot %s: registry is %s", e.Op, e.State)
}

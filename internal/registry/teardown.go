package registry

import (
	"context"

	"github.com/vk/assemblygo/internal/ctxlog"
)

// Destroy releases every built instance in reverse build order, invoking the
// optional destroy hook of each. It is best-effort and never fails: a
// failing hook is logged and teardown proceeds to the remaining instances,
// so every built instance is visited exactly once. Destroy after a failed
// build tears down the partial result.
func (r *Registry) Destroy(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case StateEmpty, StateDestroyed:
		logger.Debug("Destroy is a no-op.", "state", r.state.String())
		return
	}

	for i := len(r.buildOrder) - 1; i >= 0; i-- {
		name := r.buildOrder[i]
		inst := r.instances[name]
		if inst == nil || inst.state != InstanceReady {
			continue
		}

		if hook := r.decls[name].decl.Destroy; hook != nil {
			if err := hook(ctx, inst.object); err != nil {
				logger.Error("Destroy hook failed; continuing teardown.",
					"component", name, "error", err)
			}
		}
		inst.state = InstanceDestroyed
		inst.object = nil
		logger.Debug("Component destroyed.", "name", name)
	}

	r.buildOrder = nil
	r.state = StateDestroyed
	logger.Info("Teardown complete.")
}

// Reset returns a destroyed registry to the registration phase. Declarations
// and wiring rules are retained; instances are discarded, so a subsequent
// Build constructs everything afresh.
func (r *Registry) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateDestroyed {
		return StateError{Op: "reset", State: r.state}
	}
	r.instances = make(map[string]*instance)
	r.buildOrder = nil
	r.state = StateEmpty
	return nil
}

package registry

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/assemblygo/internal/ctxlog"
)

// Rule is one post-init wiring step: if components Target and Source both
// exist after the build, Source's instance is attached to Target. Rules
// perform attribute assignment only; they never instantiate anything and
// never add ordering constraints.
//
// By default the assignment sets the exported struct field named Field on
// the target (which must be a pointer to struct). Supplying Assign overrides
// the reflective path entirely.
type Rule struct {
	Target string
	Source string
	Field  string
	Assign func(target, source any) error
}

// Wire appends post-init wiring rules. Rules run once per successful build,
// in the order they were declared. Wiring declarations are frozen alongside
// the component declarations.
func (r *Registry) Wire(rules ...Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateEmpty {
		return StateError{Op: "declare wiring", State: r.state}
	}
	r.rules = append(r.rules, rules...)
	return nil
}

// applyWiring runs every declared rule in sequence. A rule whose target or
// source was never built is skipped, not failed: cross-references are
// best-declared, and the components they join may legitimately be absent
// from a given declaration set. Callers must hold r.mu.
func (r *Registry) applyWiring(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for _, rule := range r.rules {
		target, targetOK := r.instances[rule.Target]
		source, sourceOK := r.instances[rule.Source]
		if !targetOK || target.state != InstanceReady || !sourceOK || source.state != InstanceReady {
			logger.Debug("Skipping wiring rule: endpoint not built.",
				"target", rule.Target, "source", rule.Source)
			continue
		}

		var err error
		if rule.Assign != nil {
			err = rule.Assign(target.object, source.object)
		} else {
			err = assignField(target.object, rule.Field, source.object)
		}
		if err != nil {
			return WiringError{Target: rule.Target, Field: rule.Field, Err: err}
		}
		logger.Debug("Applied wiring rule.",
			"target", rule.Target, "field", rule.Field, "source", rule.Source)
	}
	return nil
}

// assignField sets the named exported field on target (a pointer to struct)
// to source.
func assignField(target any, field string, source any) error {
	if field == "" {
		return fmt.Errorf("rule has neither a field name nor an assign func")
	}

	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer to struct, got %T", target)
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("target must point to a struct, got %T", target)
	}

	fieldVal := val.FieldByName(field)
	if !fieldVal.IsValid() {
		return fmt.Errorf("no field %q on %T", field, target)
	}
	if !fieldVal.CanSet() {
		return fmt.Errorf("field %q on %T is not settable", field, target)
	}

	srcVal := reflect.ValueOf(source)
	if !srcVal.Type().AssignableTo(fieldVal.Type()) {
		return fmt.Errorf("cannot assign %T to field %q of type %s", source, field, fieldVal.Type())
	}
	fieldVal.Set(srcVal)
	return nil
}

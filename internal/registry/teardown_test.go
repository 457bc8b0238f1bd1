package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destroyRecorder(name string, log *[]string, fail bool) DestroyFunc {
	return func(context.Context, any) error {
		*log = append(*log, name)
		if fail {
			return errors.New(name + " refused to die")
		}
		return nil
	}
}

func TestDestroy(t *testing.T) {
	t.Run("reverse build order", func(t *testing.T) {
		var destroyed []string
		r := New()
		require.NoError(t, r.Register("a", Declaration{Factory: staticFactory(1), Destroy: destroyRecorder("a", &destroyed, false)}))
		require.NoError(t, r.Register("b", Declaration{Factory: staticFactory(2), DependsOn: []string{"a"}, Destroy: destroyRecorder("b", &destroyed, false)}))
		require.NoError(t, r.Register("c", Declaration{Factory: staticFactory(3), DependsOn: []string{"b"}, Destroy: destroyRecorder("c", &destroyed, false)}))
		require.NoError(t, r.Build(context.Background()))

		r.Destroy(context.Background())
		assert.Equal(t, []string{"c", "b", "a"}, destroyed)
		assert.Equal(t, StateDestroyed, r.State())

		_, ok := r.Get("a")
		assert.False(t, ok)
	})

	t.Run("a failing hook never stops the remaining teardown", func(t *testing.T) {
		var destroyed []string
		r := New()
		require.NoError(t, r.Register("a", Declaration{Factory: staticFactory(1), Destroy: destroyRecorder("a", &destroyed, false)}))
		require.NoError(t, r.Register("b", Declaration{Factory: staticFactory(2), DependsOn: []string{"a"}, Destroy: destroyRecorder("b", &destroyed, true)}))
		require.NoError(t, r.Register("c", Declaration{Factory: staticFactory(3), DependsOn: []string{"b"}, Destroy: destroyRecorder("c", &destroyed, false)}))
		require.NoError(t, r.Build(context.Background()))

		r.Destroy(context.Background())
		assert.Equal(t, []string{"c", "b", "a"}, destroyed)
	})

	t.Run("every instance visited exactly once, even on repeat destroy", func(t *testing.T) {
		var destroyed []string
		r := New()
		require.NoError(t, r.Register("a", Declaration{Factory: staticFactory(1), Destroy: destroyRecorder("a", &destroyed, false)}))
		require.NoError(t, r.Build(context.Background()))

		r.Destroy(context.Background())
		r.Destroy(context.Background())
		assert.Equal(t, []string{"a"}, destroyed)
	})

	t.Run("tears down the partial result of a failed build", func(t *testing.T) {
		var destroyed []string
		r := New()
		require.NoError(t, r.Register("a", Declaration{Factory: staticFactory(1), Destroy: destroyRecorder("a", &destroyed, false)}))
		require.NoError(t, r.Register("boom", Declaration{
			Factory:   func(context.Context, map[string]any) (any, error) { return nil, errors.New("nope") },
			DependsOn: []string{"a"},
			Destroy:   destroyRecorder("boom", &destroyed, false),
		}))
		require.Error(t, r.Build(context.Background()))

		r.Destroy(context.Background())
		// Only the successfully built component is released.
		assert.Equal(t, []string{"a"}, destroyed)
	})

	t.Run("no-op before any build", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register("a", Declaration{Factory: staticFactory(1)}))
		r.Destroy(context.Background())
		assert.Equal(t, StateEmpty, r.State())
	})
}

func TestReset(t *testing.T) {
	t.Run("allows a second build with fresh instances", func(t *testing.T) {
		builds := 0
		r := New()
		require.NoError(t, r.Register("counter", Declaration{
			Factory: func(context.Context, map[string]any) (any, error) {
				builds++
				return builds, nil
			},
		}))

		require.NoError(t, r.Build(context.Background()))
		first, _ := r.Get("counter")

		r.Destroy(context.Background())
		require.NoError(t, r.Reset())
		require.NoError(t, r.Build(context.Background()))
		second, _ := r.Get("counter")

		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
	})

	t.Run("only valid after destroy", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register("a", Declaration{Factory: staticFactory(1)}))

		var stateErr StateError
		require.ErrorAs(t, r.Reset(), &stateErr)

		require.NoError(t, r.Build(context.Background()))
		require.ErrorAs(t, r.Reset(), &stateErr)

		r.Destroy(context.Background())
		assert.NoError(t, r.Reset())
		assert.Equal(t, StateEmpty, r.State())
	})

	t.Run("recovers a failed build via destroy and reset", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register("p", Declaration{Factory: staticFactory(1), DependsOn: []string{"root"}}))

		require.Error(t, r.Build(context.Background()))
		r.Destroy(context.Background())
		require.NoError(t, r.Reset())

		// Supplying the root this time succeeds.
		require.NoError(t, r.Build(context.Background(), WithExternalRoot("root", "anchor")))
		assert.Equal(t, StateBuilt, r.State())
	})
}

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/assemblygo/internal/registry"
)

func noopFactory(context.Context, map[string]any) (any, error) {
	return struct{}{}, nil
}

func TestCatalog(t *testing.T) {
	c := New()
	c.Add("clock", Entry{Factory: noopFactory})
	c.Add("bus", Entry{Factory: noopFactory})

	entry, ok := c.Lookup("clock")
	require.True(t, ok)
	assert.NotNil(t, entry.Factory)

	_, ok = c.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"bus", "clock"}, c.Types())
}

func TestCatalogAddPanics(t *testing.T) {
	t.Run("duplicate type", func(t *testing.T) {
		c := New()
		c.Add("clock", Entry{Factory: noopFactory})
		assert.Panics(t, func() {
			c.Add("clock", Entry{Factory: noopFactory})
		})
	})

	t.Run("missing factory", func(t *testing.T) {
		c := New()
		assert.Panics(t, func() {
			c.Add("clock", Entry{Init: registry.NoInit()})
		})
	})
}

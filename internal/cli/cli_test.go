package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional manifest path with defaults", func(t *testing.T) {
		cfg, exit, err := Parse([]string{"assembly.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "assembly.hcl", cfg.ManifestPath)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.DOTPath)
	})

	t.Run("manifest flag wins over positional", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-manifest", "a.hcl", "b.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "a.hcl", cfg.ManifestPath)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-m", "a.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "a.hcl", cfg.ManifestPath)
	})

	t.Run("dot and logging options", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-dot", "-", "-log-format", "json", "-log-level", "DEBUG", "a.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "-", cfg.DOTPath)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("help flag exits cleanly", func(t *testing.T) {
		_, exit, err := Parse([]string{"-h"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, exit)
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-format", "xml", "a.hcl"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-level", "loud", "a.hcl"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Message, "invalid log-level")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := Parse([]string{"-frobnicate"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
	})
}

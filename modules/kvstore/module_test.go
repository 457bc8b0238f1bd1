package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	s := New()
	assert.Zero(t, s.Len())

	s.Set("a", 1)
	s.Set("a", 2)
	s.Set("b", "x")
	assert.Equal(t, 2, s.Len())

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	s.Delete("a")
	s.Delete("a")
	assert.Equal(t, 1, s.Len())
	_, ok = s.Get("a")
	assert.False(t, ok)

	s.clear()
	assert.Zero(t, s.Len())
	_, ok = s.Get("b")
	assert.False(t, ok)
}

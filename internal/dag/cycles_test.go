package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycles(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		assert.Empty(t, Build(nil).Cycles())
	})

	t.Run("acyclic graph", func(t *testing.T) {
		g := Build([]Input{
			{Name: "a"},
			{Name: "b", DependsOn: []string{"a"}},
			{Name: "c", DependsOn: []string{"a", "b"}},
			{Name: "d", DependsOn: []string{"c"}},
		})
		assert.Empty(t, g.Cycles())
	})

	t.Run("two-node cycle reports closed path", func(t *testing.T) {
		g := Build([]Input{
			{Name: "x", DependsOn: []string{"y"}},
			{Name: "y", DependsOn: []string{"x"}},
		})
		cycles := g.Cycles()
		require.Len(t, cycles, 1)
		cycle := cycles[0]
		require.Len(t, cycle, 3)
		assert.Equal(t, cycle[0], cycle[len(cycle)-1])
		assert.ElementsMatch(t, []string{"x", "y"}, cycle[:2])
	})

	t.Run("self dependency is a one-node cycle", func(t *testing.T) {
		g := Build([]Input{
			{Name: "a", DependsOn: []string{"a"}},
		})
		cycles := g.Cycles()
		require.Len(t, cycles, 1)
		assert.Equal(t, []string{"a", "a"}, cycles[0])
	})

	t.Run("independent cycles reported in one pass", func(t *testing.T) {
		g := Build([]Input{
			{Name: "a", DependsOn: []string{"b"}},
			{Name: "b", DependsOn: []string{"a"}},
			{Name: "ok"},
			{Name: "c", DependsOn: []string{"d"}},
			{Name: "d", DependsOn: []string{"e"}},
			{Name: "e", DependsOn: []string{"c"}},
		})
		cycles := g.Cycles()
		require.Len(t, cycles, 2)

		var sizes []int
		for _, c := range cycles {
			sizes = append(sizes, len(c))
		}
		assert.ElementsMatch(t, []int{3, 4}, sizes)
	})

	t.Run("shared cycle not double reported", func(t *testing.T) {
		// Both a and z lead into the same b<->c loop.
		g := Build([]Input{
			{Name: "b", DependsOn: []string{"a", "c", "z"}},
			{Name: "c", DependsOn: []string{"b"}},
			{Name: "a"},
			{Name: "z"},
		})
		assert.Len(t, g.Cycles(), 1)
	})

	t.Run("cycle members are not cleared by a cyclic entry", func(t *testing.T) {
		g := Build([]Input{
			{Name: "x", DependsOn: []string{"y"}},
			{Name: "y", DependsOn: []string{"x"}},
			{Name: "leaf", DependsOn: []string{"x"}},
		})
		assert.NotEmpty(t, g.Cycles())
	})
}

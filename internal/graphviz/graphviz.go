// Package graphviz renders a registry's dependency graph as Graphviz DOT
// text for diagnostics.
package graphviz

import (
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/vk/assemblygo/internal/registry"
)

// DOT writes the dependency graph in DOT format. Edge direction follows the
// build order: an edge from B to A means B must be built before A.
func DOT(w io.Writer, g registry.Graph) error {
	dg := graph.New(graph.StringHash, graph.Directed())

	for _, node := range g.Nodes {
		if err := dg.AddVertex(node); err != nil {
			return fmt.Errorf("failed to add vertex %s: %w", node, err)
		}
	}
	for _, e := range g.Edges {
		if err := dg.AddEdge(e.From, e.To); err != nil {
			return fmt.Errorf("failed to add edge %s -> %s: %w", e.From, e.To, err)
		}
	}

	return draw.DOT(dg, w)
}

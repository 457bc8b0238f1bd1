package dag

// Input describes one declared component for graph construction: its unique
// name and the names it depends on. Inputs must be supplied in registration
// order; that order is the tie-break for the topological sort.
type Input struct {
	Name      string
	DependsOn []string
}

// Edge is a single directed "must be built before" relation: From has to be
// constructed before To.
type Edge struct {
	From string
	To   string
}

// Graph is the dependency graph over a set of declared component names.
// Nodes are addressed internally by registration index so that every
// traversal is deterministic.
type Graph struct {
	names      []string
	index      map[string]int
	dependents [][]int
	indegree   []int
}

// Build converts declarations into a dependency graph. For each dependency D
// of component C, an edge D->C is added and C's in-degree incremented, but
// only when D is itself a declared component. A dependency name that is not
// declared produces no edge here: whether it can be satisfied (for example by
// an externally supplied root instance) is deliberately decided later, at
// instantiation time.
func Build(inputs []Input) *Graph {
	g := &Graph{
		names:      make([]string, len(inputs)),
		index:      make(map[string]int, len(inputs)),
		dependents: make([][]int, len(inputs)),
		indegree:   make([]int, len(inputs)),
	}
	for i, in := range inputs {
		g.names[i] = in.Name
		g.index[in.Name] = i
	}

	seen := make(map[Edge]bool)
	for i, in := range inputs {
		for _, dep := range in.DependsOn {
			from, declared := g.index[dep]
			if !declared {
				continue
			}
			e := Edge{From: dep, To: in.Name}
			if seen[e] {
				continue
			}
			seen[e] = true
			g.dependents[from] = append(g.dependents[from], i)
			g.indegree[i]++
		}
	}
	return g
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.names)
}

// Nodes returns all node names in registration order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.names))
	copy(nodes, g.names)
	return nodes
}

// Edges returns every dependency edge, ordered by the source node's
// registration index.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for i, deps := range g.dependents {
		for _, j := range deps {
			edges = append(edges, Edge{From: g.names[i], To: g.names[j]})
		}
	}
	return edges
}

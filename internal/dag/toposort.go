package dag

import "sort"

// Order computes a topological initialization order using Kahn's algorithm:
// every node with in-degree zero is seeded into a ready queue, then nodes are
// repeatedly dequeued, appended to the order, and their dependents' in-degrees
// decremented, enqueueing any that reach zero.
//
// Ties between simultaneously-ready nodes are broken by registration order
// (first registered, first dequeued), so the result is fully deterministic
// for a given declaration sequence.
//
// If the graph contains a cycle the returned order is shorter than Len();
// callers treat that shortfall as a circular-dependency failure.
func (g *Graph) Order() []string {
	indegree := make([]int, len(g.indegree))
	copy(indegree, g.indegree)

	var ready []int
	for n := range g.names {
		if indegree[n] == 0 {
			ready = append(ready, n)
		}
	}

	order := make([]string, 0, len(g.names))
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, g.names[n])

		for _, dep := range g.dependents[n] {
			indegree[dep]--
			if indegree[dep] == 0 {
				at := sort.SearchInts(ready, dep)
				ready = append(ready, 0)
				copy(ready[at+1:], ready[at:])
				ready[at] = dep
			}
		}
	}
	return order
}

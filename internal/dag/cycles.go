package dag

import (
	"strconv"
	"strings"
)

// Cycles scans the whole graph for dependency cycles using depth-first search
// with an explicit recursion stack. Each detected cycle is returned as the
// path slice from the revisited node through the current node, closed by
// re-appending the start node (so ["x","y","x"] describes x -> y -> x).
//
// Scanning continues past the first hit: every independent cycle in the graph
// is reported in a single pass. The result is empty iff the graph is acyclic.
func (g *Graph) Cycles() [][]string {
	var (
		cycles   [][]string
		reported = make(map[string]bool)
		visited  = make([]bool, len(g.names))
		onStack  = make([]bool, len(g.names))
		path     []int
	)

	record := func(start int) {
		first := 0
		for i, n := range path {
			if n == start {
				first = i
				break
			}
		}
		loop := path[first:]
		cycle := make([]string, 0, len(loop)+1)
		for _, n := range loop {
			cycle = append(cycle, g.names[n])
		}
		cycle = append(cycle, g.names[start])
		if key := canonicalCycle(loop); !reported[key] {
			reported[key] = true
			cycles = append(cycles, cycle)
		}
	}

	var visit func(n int)
	visit = func(n int) {
		if onStack[n] {
			record(n)
			return
		}
		if visited[n] {
			return
		}
		onStack[n] = true
		path = append(path, n)
		for _, dep := range g.dependents[n] {
			visit(dep)
		}
		path = path[:len(path)-1]
		onStack[n] = false
		visited[n] = true
	}

	for n := range g.names {
		if !visited[n] {
			visit(n)
		}
	}
	return cycles
}

// canonicalCycle produces a rotation-independent key for a cycle so the same
// loop reached along two different paths is reported once.
func canonicalCycle(loop []int) string {
	min := 0
	for i, n := range loop {
		if n < loop[min] {
			min = i
		}
	}
	var b strings.Builder
	for i := range loop {
		b.WriteString(strconv.Itoa(loop[(min+i)%len(loop)]))
		b.WriteByte(',')
	}
	return b.String()
}

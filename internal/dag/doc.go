// Package dag holds the pure graph computations behind a component build:
// converting declarations into an adjacency structure with in-degree counts,
// detecting every independent dependency cycle, and computing a deterministic
// topological initialization order. Nothing in this package instantiates
// components or performs I/O.
package dag

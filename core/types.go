// This file declares Vertex, Edge, Graph, Option, sentinel errors,
// and the New constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrBadFormat indicates malformed graph text input.
	ErrBadFormat = errors.New("core: bad graph text format")
)

// Vertex is a dense integer identifier in [0, n).
// It has no identity beyond its index.
type Vertex = int

// NoVertex is the "none" sentinel used wherever a Vertex slot may be empty,
// most importantly in predecessor arrays.
const NoVertex Vertex = -1

// Edge is one adjacency entry: the target vertex and the edge weight.
//
// Weight may be negative. Algorithms that require non-negative weights are
// responsible for their own policy (package shortest documents both).
type Edge struct {
	// To is the target vertex of this adjacency entry.
	To Vertex

	// Weight is the cost of traversing the edge.
	Weight float64
}

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithDirected sets the directedness of the Graph
// (true = directed, false = undirected; default undirected).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph: n adjacency lists over vertices 0..n-1
// and a directedness flag fixed at construction.
//
// Invariant: on an undirected Graph, AddEdge(u, v, w) with u != v also
// inserts the mirror entry (v, u, w), and EdgeCount reports unique
// undirected edges (directed entries halved).
type Graph struct {
	directed bool
	adj      [][]Edge
}

// New creates a Graph with n isolated vertices and the given options.
// Negative n is treated as zero.
// Complexity: O(n).
func New(n int, opts ...Option) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adj: make([][]Edge, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

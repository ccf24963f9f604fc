// Package core defines the central Graph, Vertex, and Edge types used by
// every algorithm in pathlab.
//
// Vertices are dense integer identifiers in [0, n): a vertex has no identity
// beyond its index, vertices are never removed individually, and the whole
// graph is resized or rebuilt instead. Edges carry a float64 weight, which
// may be negative — Bellman–Ford accepts such edges, while Dijkstra skips
// them (see package shortest).
//
// The Graph is a plain in-memory adjacency-list structure with no internal
// locking. Sharing a Graph between goroutines is safe only while no
// goroutine mutates it; hosts that interleave AddEdge/Resize with algorithm
// runs must serialize those themselves.
//
// Errors:
//
//	ErrVertexOutOfRange - an edge endpoint or vertex argument is outside [0, n).
//	ErrBadFormat        - the text codec met a malformed header or edge line.
package core

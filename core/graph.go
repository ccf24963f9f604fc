// Graph lifecycle and queries: AddEdge, Neighbors, VertexCount, EdgeCount,
// Resize, Clone. All methods are single-threaded; see package doc.

package core

import "fmt"

// VertexCount returns the number of vertices n. Vertices are 0..n-1.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adj) }

// Directed reports whether the Graph was built as directed.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// AddEdge inserts the edge (u, v, w). On an undirected Graph the mirror
// entry (v, u, w) is inserted as well, unless u == v.
//
// Fails with ErrVertexOutOfRange when either endpoint is outside
// [0, VertexCount); the failed call leaves no adjacency list modified.
// Parallel edges and self-loops are permitted.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Vertex, w float64) error {
	n := len(g.adj)
	if u < 0 || u >= n {
		return fmt.Errorf("AddEdge(%d→%d): u: %w", u, v, ErrVertexOutOfRange)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d→%d): v: %w", u, v, ErrVertexOutOfRange)
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{To: u, Weight: w})
	}

	return nil
}

// Neighbors returns the adjacency list of u in insertion order.
//
// The returned slice is a read-only view into the Graph's storage: callers
// must not modify it, and must not hold it across a mutation of the Graph.
// Fails with ErrVertexOutOfRange for u outside [0, VertexCount).
//
// Complexity: O(1).
func (g *Graph) Neighbors(u Vertex) ([]Edge, error) {
	if u < 0 || u >= len(g.adj) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexOutOfRange)
	}

	return g.adj[u], nil
}

// EdgeCount returns the number of edges. On an undirected Graph each edge is
// stored twice (once per direction, self-loops excepted), so the total of
// directed entries is halved to report unique undirected edges.
// Complexity: O(n).
func (g *Graph) EdgeCount() int {
	var m int
	for _, list := range g.adj {
		m += len(list)
	}
	if !g.directed {
		m /= 2
	}

	return m
}

// Resize changes the vertex count to n in place.
//
// Shrinking truncates adjacency storage: retained vertices keep their lists,
// but entries pointing at removed vertices are dropped so that every stored
// edge target stays inside [0, n). Growing appends isolated vertices.
// Negative n is treated as zero.
//
// Complexity: O(n + E).
func (g *Graph) Resize(n int) {
	if n < 0 {
		n = 0
	}
	old := len(g.adj)
	if n == old {
		return
	}

	if n < old {
		g.adj = g.adj[:n]
		for u, list := range g.adj {
			kept := list[:0]
			for _, e := range list {
				if e.To < n {
					kept = append(kept, e)
				}
			}
			g.adj[u] = kept
		}

		return
	}

	grown := make([][]Edge, n)
	copy(grown, g.adj)
	g.adj = grown
}

// Clone returns a deep copy of the Graph: directedness flag and every
// adjacency list. Later mutation of either graph never affects the other.
// Complexity: O(n + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		directed: g.directed,
		adj:      make([][]Edge, len(g.adj)),
	}
	for u, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		clone.adj[u] = make([]Edge, len(list))
		copy(clone.adj[u], list)
	}

	return clone
}

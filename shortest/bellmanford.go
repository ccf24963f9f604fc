package shortest

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// flatEdge is one entry of the flattened edge list BellmanFord iterates.
// On undirected graphs the adjacency structure already stores both
// directions, so flattening yields both (u,v,w) and (v,u,w).
type flatEdge struct {
	u, v core.Vertex
	w    float64
}

// BellmanFord computes shortest distances from source to every vertex of g,
// accepting negative edge weights.
//
// After at most V-1 relaxation passes (with an early exit once a full pass
// changes nothing) one extra pass runs over all edges: if any edge can still
// be relaxed, Result.NegativeCycle is set. Distances and parents are still
// returned best-effort in that case — callers must check the flag before
// trusting values for vertices reachable through the cycle.
//
// A source outside [0, VertexCount) yields the initialized "nothing
// reachable" Result and no error; only a nil graph fails, with ErrNilGraph.
//
// Complexity: O(V · E).
func BellmanFord(g *core.Graph, source core.Vertex) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	n := g.VertexCount()
	res := newResult(n)
	if source < 0 || source >= n {
		return res, nil
	}
	res.Dist[source] = 0

	edges, err := flatten(g)
	if err != nil {
		return Result{}, fmt.Errorf("shortest: bellman-ford: %w", err)
	}

	for pass := 0; pass < n-1; pass++ {
		changed := false
		for _, e := range edges {
			du := res.Dist[e.u]
			if du == Inf {
				continue
			}
			if nd := du + e.w; nd < res.Dist[e.v] {
				res.Dist[e.v] = nd
				res.Parent[e.v] = e.u
				changed = true
			}
		}
		// A quiet pass means every shortest path is already settled.
		if !changed {
			break
		}
	}

	// Detection pass: any still-relaxable edge proves a reachable
	// negative-weight cycle.
	for _, e := range edges {
		du := res.Dist[e.u]
		if du != Inf && du+e.w < res.Dist[e.v] {
			res.NegativeCycle = true
			break
		}
	}

	return res, nil
}

// flatten materializes g's adjacency structure as one explicit edge list.
func flatten(g *core.Graph) ([]flatEdge, error) {
	n := g.VertexCount()
	edges := make([]flatEdge, 0, n)
	for u := 0; u < n; u++ {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("flatten neighbors of %d: %w", u, err)
		}
		for _, e := range neighbors {
			edges = append(edges, flatEdge{u: u, v: e.To, w: e.Weight})
		}
	}

	return edges, nil
}

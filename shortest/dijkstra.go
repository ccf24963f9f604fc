package shortest

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/pqueue"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Policy on negative weights: an edge with weight < 0 is skipped during
// relaxation, silently. The run completes and the Result carries no error
// marker for it — there is simply no correctness guarantee along such edges.
// Use BellmanFord when negative weights matter.
//
// A source outside [0, VertexCount) yields the initialized "nothing
// reachable" Result (all distances Inf, all parents NoVertex) and no error;
// only a nil graph fails, with ErrNilGraph.
//
// Complexity: O((V + E) log V), see package doc.
func Dijkstra(g *core.Graph, source core.Vertex) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	n := g.VertexCount()
	res := newResult(n)
	if source < 0 || source >= n {
		return res, nil
	}

	// visited[v] means dist[v] is final; stale queue duplicates for v are
	// discarded on pop instead of the queue supporting decrease-key.
	visited := make([]bool, n)
	pq := pqueue.New[core.Vertex, float64]()

	res.Dist[source] = 0
	pq.Enqueue(source, 0)

	for !pq.IsEmpty() {
		u, err := pq.Dequeue()
		if err != nil {
			// Unreachable under the IsEmpty guard; surface it rather than loop.
			return Result{}, fmt.Errorf("shortest: dijkstra dequeue: %w", err)
		}
		if visited[u] {
			continue
		}
		visited[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return Result{}, fmt.Errorf("shortest: dijkstra neighbors of %d: %w", u, err)
		}
		for _, e := range neighbors {
			if e.Weight < 0 {
				continue // out of contract, skipped by policy
			}
			nd := res.Dist[u] + e.Weight
			if nd < res.Dist[e.To] {
				res.Dist[e.To] = nd
				res.Parent[e.To] = u
				pq.Enqueue(e.To, nd)
			}
		}
	}

	return res, nil
}

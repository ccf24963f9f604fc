// This file declares the Result type, the Inf distance sentinel,
// and the package's sentinel errors.

package shortest

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathlab/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed to an algorithm.
var ErrNilGraph = errors.New("shortest: graph is nil")

// Inf is the "unreachable" distance sentinel.
var Inf = math.Inf(1)

// Result holds the outcome of one single-source shortest-path run over a
// graph of n vertices. It is created fresh per invocation, owns its storage,
// and is never mutated after being returned.
type Result struct {
	// Dist[v] is the best-known distance from the source to v,
	// or Inf when v is unreachable.
	Dist []float64

	// Parent[v] is the predecessor of v on a shortest path from the source,
	// or core.NoVertex when v is the source or unreachable.
	// Feed it to RestorePath to materialize a path.
	Parent []core.Vertex

	// NegativeCycle is set by BellmanFord when a negative-weight cycle
	// reachable from the source exists. Distances through the cycle are then
	// unreliable. Dijkstra never sets it.
	NegativeCycle bool
}

// newResult returns a Result for n vertices with every distance Inf and
// every parent core.NoVertex.
func newResult(n int) Result {
	res := Result{
		Dist:   make([]float64, n),
		Parent: make([]core.Vertex, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = Inf
		res.Parent[i] = core.NoVertex
	}

	return res
}

package shortest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/shortest"
)

const distTolerance = 1e-6

// chainGraph builds the 5-vertex directed reference graph:
// 0→1(2), 0→2(5), 1→2(1), 1→3(2), 2→3(1), 3→4(3).
func chainGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(5, core.WithDirected(true))
	edges := []struct {
		u, v core.Vertex
		w    float64
	}{
		{0, 1, 2}, {0, 2, 5}, {1, 2, 1}, {1, 3, 2}, {2, 3, 1}, {3, 4, 3},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := shortest.Dijkstra(nil, 0)
	require.ErrorIs(t, err, shortest.ErrNilGraph)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))

	for _, source := range []core.Vertex{-1, 3} {
		res, err := shortest.Dijkstra(g, source)
		require.NoError(t, err)
		require.Len(t, res.Dist, 3)
		for v := 0; v < 3; v++ {
			assert.True(t, math.IsInf(res.Dist[v], 1), "dist[%d]", v)
			assert.Equal(t, core.NoVertex, res.Parent[v])
		}
	}
}

func TestDijkstra_ReferenceDistances(t *testing.T) {
	g := chainGraph(t)
	res, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)

	want := []float64{0, 2, 3, 4, 7}
	require.Len(t, res.Dist, len(want))
	for v, w := range want {
		assert.InDelta(t, w, res.Dist[v], distTolerance, "dist[%d]", v)
	}
	assert.False(t, res.NegativeCycle)
}

func TestDijkstra_UnreachableKeepsInf(t *testing.T) {
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))

	res, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Dist[2], 1))
	assert.Equal(t, core.NoVertex, res.Parent[2])
}

func TestDijkstra_NegativeEdgeSilentlySkipped(t *testing.T) {
	// 0→1(5), 0→2(1), 2→1(-10): the negative edge is ignored, so the best
	// accepted route to 1 is the direct one. No error is raised.
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, -10))

	res, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, res.Dist[1], distTolerance)
	assert.InDelta(t, 1.0, res.Dist[2], distTolerance)
	assert.False(t, res.NegativeCycle, "dijkstra never sets the cycle flag")
}

func TestDijkstra_Undirected(t *testing.T) {
	// Triangle 0—1(1), 1—2(2), 0—2(5): best 0→2 goes through 1.
	g := core.New(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))

	res, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.Dist[2], distTolerance)
	assert.Equal(t, core.Vertex(1), res.Parent[2])
}

func TestDijkstra_ResultIndependentOfGraphMutation(t *testing.T) {
	g := chainGraph(t)
	res, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)

	before := append([]float64(nil), res.Dist...)
	require.NoError(t, g.AddEdge(0, 4, 0.5))
	g.Resize(2)
	assert.Equal(t, before, res.Dist, "result must own its storage")
}

package shortest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/shortest"
)

func TestBellmanFord_NilGraph(t *testing.T) {
	_, err := shortest.BellmanFord(nil, 0)
	require.ErrorIs(t, err, shortest.ErrNilGraph)
}

func TestBellmanFord_ReferenceDistances(t *testing.T) {
	g := chainGraph(t)
	res, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)

	want := []float64{0, 2, 3, 4, 7}
	for v, w := range want {
		assert.InDelta(t, w, res.Dist[v], distTolerance, "dist[%d]", v)
	}
	assert.False(t, res.NegativeCycle)
}

func TestBellmanFord_NegativeWeightsNoCycle(t *testing.T) {
	// 0→1(1), 1→2(-2), 0→2(4): shortest to 2 is -1 via the negative edge.
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, -2))
	require.NoError(t, g.AddEdge(0, 2, 4))

	res, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.False(t, res.NegativeCycle)
	assert.InDelta(t, 0.0, res.Dist[0], distTolerance)
	assert.InDelta(t, 1.0, res.Dist[1], distTolerance)
	assert.InDelta(t, -1.0, res.Dist[2], distTolerance)
	assert.Equal(t, core.Vertex(1), res.Parent[2])
}

func TestBellmanFord_DetectsNegativeCycle(t *testing.T) {
	// 0→1(1), 1→2(-2), 2→0(-1): total cycle weight -2, reachable from 0.
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, -2))
	require.NoError(t, g.AddEdge(2, 0, -1))

	res, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.True(t, res.NegativeCycle)
	// Best-effort values are still present, not zeroed.
	require.Len(t, res.Dist, 3)
	require.Len(t, res.Parent, 3)
}

func TestBellmanFord_CycleNotReachableFromSource(t *testing.T) {
	// The negative cycle lives in 2→3→2 but the source component 0→1 never
	// reaches it, so the flag must stay false.
	g := core.New(4, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, -2))
	require.NoError(t, g.AddEdge(3, 2, -2))

	res, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.False(t, res.NegativeCycle)
	assert.True(t, math.IsInf(res.Dist[2], 1))
	assert.True(t, math.IsInf(res.Dist[3], 1))
}

func TestBellmanFord_UnreachableKeepsInf(t *testing.T) {
	g := core.New(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))

	res, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Dist[2], 1))
	assert.Equal(t, core.NoVertex, res.Parent[2])
}

func TestBellmanFord_SourceOutOfRange(t *testing.T) {
	g := core.New(2, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))

	res, err := shortest.BellmanFord(g, 5)
	require.NoError(t, err)
	for v := range res.Dist {
		assert.True(t, math.IsInf(res.Dist[v], 1))
	}
	assert.False(t, res.NegativeCycle)
}

func TestAgreement_NonNegativeWeights(t *testing.T) {
	// On non-negative weights both algorithms must agree on every finite
	// distance and on which vertices are unreachable.
	g := core.New(7, core.WithDirected(true))
	edges := []struct {
		u, v core.Vertex
		w    float64
	}{
		{0, 1, 0.5}, {0, 2, 2.25}, {1, 3, 1}, {2, 3, 0.25},
		{3, 4, 4}, {1, 4, 6.5}, {4, 0, 1},
		// 5 and 6 form a detached pair.
		{5, 6, 1},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	d, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	b, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)

	require.Equal(t, len(d.Dist), len(b.Dist))
	for v := range d.Dist {
		dInf := math.IsInf(d.Dist[v], 1)
		bInf := math.IsInf(b.Dist[v], 1)
		require.Equal(t, dInf, bInf, "reachability of %d", v)
		if !dInf {
			assert.InDelta(t, b.Dist[v], d.Dist[v], distTolerance, "dist[%d]", v)
		}
	}
}

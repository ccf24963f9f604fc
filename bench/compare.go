package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/shortest"
)

// distTolerance is the absolute tolerance under which two finite distances
// count as equal during cross-validation.
const distTolerance = 1e-6

// msPerSecond converts a time.Duration's seconds into milliseconds.
const msPerSecond = 1e3

// Compare runs Dijkstra and then Bellman–Ford from source on g, timing each
// with the monotonic clock, and returns one Record per algorithm in that
// order. The graph is borrowed read-only.
//
// Errors from the algorithms (nil graph) propagate; cross-validation
// outcomes do not — they land in the records' OK flags.
func Compare(g *core.Graph, source core.Vertex) ([]Record, error) {
	start := time.Now()
	resD, err := shortest.Dijkstra(g, source)
	if err != nil {
		return nil, fmt.Errorf("bench: dijkstra: %w", err)
	}
	elapsedD := time.Since(start)

	start = time.Now()
	resB, err := shortest.BellmanFord(g, source)
	if err != nil {
		return nil, fmt.Errorf("bench: bellman-ford: %w", err)
	}
	elapsedB := time.Since(start)

	vertices := g.VertexCount()
	edges := g.EdgeCount()
	agree := distancesAgree(resD.Dist, resB.Dist)

	log.Debug().
		Int("vertices", vertices).
		Int("edges", edges).
		Float64("dijkstra_ms", elapsedD.Seconds()*msPerSecond).
		Float64("bellman_ford_ms", elapsedB.Seconds()*msPerSecond).
		Bool("agree", agree).
		Bool("negative_cycle", resB.NegativeCycle).
		Int("source", source).
		Msg("compared shortest-path algorithms")
	if !agree {
		log.Warn().
			Int("vertices", vertices).
			Int("edges", edges).
			Int("source", source).
			Msg("distance vectors disagree; dijkstra result is suspect")
	}

	return []Record{
		{
			Vertices:  vertices,
			Edges:     edges,
			Algorithm: AlgorithmDijkstra,
			TimeMS:    elapsedD.Seconds() * msPerSecond,
			OK:        len(resD.Dist) > 0,
		},
		{
			Vertices:  vertices,
			Edges:     edges,
			Algorithm: AlgorithmBellmanFord,
			TimeMS:    elapsedB.Seconds() * msPerSecond,
			OK:        !resB.NegativeCycle && agree,
		},
	}, nil
}

// distancesAgree cross-validates two distance vectors: same length, and per
// vertex either both infinite or both finite within distTolerance.
func distancesAgree(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		aInf := math.IsInf(a[i], 1)
		bInf := math.IsInf(b[i], 1)
		if aInf != bInf {
			return false
		}
		if !aInf && !scalar.EqualWithinAbs(a[i], b[i], distTolerance) {
			return false
		}
	}

	return true
}

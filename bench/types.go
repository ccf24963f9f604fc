package bench

// Algorithm names as they appear in Record.Algorithm and CSV rows.
const (
	AlgorithmDijkstra    = "Dijkstra"
	AlgorithmBellmanFord = "Bellman-Ford"
)

// Record is one benchmark measurement: a snapshot taken when the timed run
// finished, never mutated afterwards.
type Record struct {
	// Vertices and Edges describe the measured graph.
	Vertices int
	Edges    int

	// Algorithm is AlgorithmDijkstra or AlgorithmBellmanFord.
	Algorithm string

	// TimeMS is the elapsed wall time of the run in milliseconds.
	TimeMS float64

	// OK is the per-algorithm correctness signal; see the package doc for
	// its (asymmetric) meaning.
	OK bool
}

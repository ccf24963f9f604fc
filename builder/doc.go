// Package builder generates graphs for experiments and benchmarks.
//
// Random samples an Erdős–Rényi-style graph: every admissible vertex pair
// receives an edge independently with probability p, weighted uniformly from
// a configurable range. Directed graphs draw every ordered pair (u, v) with
// u != v; undirected graphs draw unordered pairs {u, v} with u < v, so the
// mirror entries come from core.AddEdge. Self-loops are never generated.
//
// Generation is non-deterministic by default (time-derived seed). Pass
// WithSeed for reproducible fixtures: a fixed seed and fixed parameters
// yield an identical graph, because the pair-trial order is stable
// (u ascending, then v ascending).
//
// Errors:
//
//	ErrNegativeVertexCount - n < 0.
//	ErrInvalidProbability  - p outside [0, 1].
//
// Both fail fast before anything is allocated. An inverted weight range is
// NOT an error: min and max are swapped silently, a deliberate leniency.
package builder

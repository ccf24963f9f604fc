// Package bench runs both shortest-path algorithms on the same graph and
// source, times them independently on the monotonic clock, cross-validates
// their distance vectors, and reports one Record per algorithm.
//
// Two distance vectors agree when they have the same length and, for every
// vertex, both entries are infinite or both are finite and within 1e-6
// absolute of each other.
//
// The ok flags are asymmetric on purpose: Dijkstra's ok only means "the run
// produced entries" — a weak
// signal that cannot catch negative-weight mishandling on its own — while
// Bellman–Ford's ok means "no negative cycle detected AND the vectors
// agree", encoding that Bellman–Ford is the ground truth exactly when no
// negative cycle exists. Downstream tooling depends on these semantics, so
// the asymmetry is kept rather than fixed; the comparator logs a warning
// whenever the vectors disagree, which surfaces the case Dijkstra's weak
// flag would hide.
package bench

// Package shortest implements single-source shortest paths over core.Graph
// with two classical algorithms and path reconstruction.
//
// Dijkstra processes vertices in order of increasing distance using a
// min-priority queue with the lazy decrease-key pattern: an improving
// relaxation pushes a fresh queue entry, and stale entries are discarded on
// pop through a visited filter. Correctness is guaranteed only for
// non-negative edge weights; a negative-weight edge encountered during
// relaxation is silently skipped. That skip is deliberate policy, not a
// bug — the algorithm degrades gracefully instead of failing, and makes no
// correctness promise for the skipped edges.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a binary heap; stale duplicates may relax
//     the bound in pathological inputs, correctness is unaffected.
//   - Space: O(V + E) for the result arrays and queue entries.
//
// BellmanFord accepts arbitrary (including negative) weights. It flattens
// the adjacency structure into an explicit edge list once, performs up to
// V-1 full relaxation passes with an early exit on a quiet pass, and then
// one extra pass: any edge still relaxable proves a negative-weight cycle
// reachable from the source. The cycle is flagged on the Result rather than
// raised as an error; distances for vertices reachable through the cycle are
// best-effort and callers must check NegativeCycle before trusting them.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V + E)
//
// Both algorithms borrow the Graph strictly read-only and return a fresh
// Result that stays valid after the Graph is mutated or dropped. Unreachable
// vertices keep the Inf distance and NoVertex parent.
//
// Errors:
//
//	ErrNilGraph - a nil *core.Graph was passed to either algorithm.
package shortest

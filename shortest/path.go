package shortest

import "github.com/katalvlaran/pathlab/core"

// RestorePath materializes the path source→…→target from a predecessor
// array, walking backward from target until it reaches source or a NoVertex
// sentinel.
//
// Returns the ordered vertex sequence starting at source and ending at
// target; [source] when target == source; and an empty (nil) path — never an
// error — when target is out of range, unreachable, or the walk fails to
// arrive at source. The walk is capped at len(parent) steps, so a parent
// array corrupted by a negative cycle cannot loop forever.
//
// Complexity: O(path length).
func RestorePath(source, target core.Vertex, parent []core.Vertex) []core.Vertex {
	n := len(parent)
	if target < 0 || target >= n {
		return nil
	}
	if parent[target] == core.NoVertex && target != source {
		return nil
	}

	rev := make([]core.Vertex, 0, n)
	for v := target; ; v = parent[v] {
		rev = append(rev, v)
		if v == source {
			break
		}
		if len(rev) == n {
			break // cyclic parent chain, cannot terminate at source
		}
		if p := parent[v]; p < 0 || p >= n {
			break // NoVertex or a corrupted entry ends the walk
		}
	}
	if len(rev) == 0 || rev[len(rev)-1] != source {
		return nil
	}

	// Reverse in place: the walk collected target→source.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

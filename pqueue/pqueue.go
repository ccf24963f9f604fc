package pqueue

import (
	"errors"
	"sort"

	"golang.org/x/exp/constraints"
)

// ErrOutOfRange indicates access past the queue's current contents:
// removing or peeking on an empty queue, or an invalid Peek index.
var ErrOutOfRange = errors.New("pqueue: access out of range")

// entry pairs an element with the priority it was enqueued under.
type entry[T any, P constraints.Ordered] struct {
	item T
	pri  P
}

// Queue is a slice-backed binary min-heap of elements keyed by priority.
// The zero value is NOT ready to use; call New.
type Queue[T any, P constraints.Ordered] struct {
	heap []entry[T, P]
}

// New returns an empty Queue.
func New[T any, P constraints.Ordered]() *Queue[T, P] {
	return &Queue[T, P]{}
}

// IsEmpty reports whether the queue holds no elements.
// Complexity: O(1).
func (q *Queue[T, P]) IsEmpty() bool { return len(q.heap) == 0 }

// Size returns the number of queued entries, stale duplicates included.
// Complexity: O(1).
func (q *Queue[T, P]) Size() int { return len(q.heap) }

// Enqueue inserts item under the given priority, unconditionally: an
// element already present is not updated in place, a second entry is added.
// Complexity: O(log n).
func (q *Queue[T, P]) Enqueue(item T, priority P) {
	q.heap = append(q.heap, entry[T, P]{item: item, pri: priority})
	q.up(len(q.heap) - 1)
}

// Dequeue removes and returns the minimum-priority element.
// Fails with ErrOutOfRange on an empty queue.
// Complexity: O(log n).
func (q *Queue[T, P]) Dequeue() (T, error) {
	var zero T
	n := len(q.heap)
	if n == 0 {
		return zero, ErrOutOfRange
	}

	top := q.heap[0].item
	q.heap[0] = q.heap[n-1]
	q.heap[n-1] = entry[T, P]{} // release references held by the vacated slot
	q.heap = q.heap[:n-1]
	if len(q.heap) > 0 {
		q.down(0)
	}

	return top, nil
}

// PeekFirst returns the minimum-priority element without removing it.
// Fails with ErrOutOfRange on an empty queue.
// Complexity: O(1).
func (q *Queue[T, P]) PeekFirst() (T, error) {
	var zero T
	if len(q.heap) == 0 {
		return zero, ErrOutOfRange
	}

	return q.heap[0].item, nil
}

// PeekLast returns the maximum-priority element without removing it.
// Fails with ErrOutOfRange on an empty queue.
// Complexity: O(n).
func (q *Queue[T, P]) PeekLast() (T, error) {
	var zero T
	if len(q.heap) == 0 {
		return zero, ErrOutOfRange
	}

	// The maximum lives somewhere among the leaves; a full scan is simpler
	// and the method is inspection-only.
	worst := 0
	for i := 1; i < len(q.heap); i++ {
		if q.heap[i].pri > q.heap[worst].pri {
			worst = i
		}
	}

	return q.heap[worst].item, nil
}

// Peek returns the element at position i in ascending priority order over a
// snapshot of the current contents (Peek(0) == PeekFirst). Fails with
// ErrOutOfRange for i outside [0, Size).
// Complexity: O(n log n); inspection-only, not meant for hot paths.
func (q *Queue[T, P]) Peek(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(q.heap) {
		return zero, ErrOutOfRange
	}

	snapshot := make([]entry[T, P], len(q.heap))
	copy(snapshot, q.heap)
	sort.SliceStable(snapshot, func(a, b int) bool { return snapshot[a].pri < snapshot[b].pri })

	return snapshot[i].item, nil
}

// up restores the heap invariant after an append at index j.
func (q *Queue[T, P]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || q.heap[i].pri <= q.heap[j].pri {
			break
		}
		q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
		j = i
	}
}

// down restores the heap invariant after the root was replaced.
func (q *Queue[T, P]) down(i0 int) {
	n := len(q.heap)
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.heap[j2].pri < q.heap[j1].pri {
			j = j2 // right child
		}
		if q.heap[i].pri <= q.heap[j].pri {
			break
		}
		q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
		i = j
	}
}

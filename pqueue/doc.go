// Package pqueue provides a generic min-priority queue: elements paired with
// a mutable priority, smaller priority dequeued first.
//
// The queue deliberately has no decrease-key operation. Re-prioritizing an
// element is a logical re-insertion: Enqueue the element again under the new
// priority and let the consumer discard the stale entry when it surfaces
// (Dijkstra in package shortest does exactly this with a visited filter).
//
// Backing structure is a slice binary heap. Enqueue and Dequeue cost
// O(log n); PeekFirst is O(1); PeekLast and Peek(i) are inspection
// conveniences over the current contents and cost O(n) and O(n log n)
// respectively. Ties between equal priorities are broken arbitrarily by heap
// order — stability is not a guaranteed property.
//
// Errors:
//
//	ErrOutOfRange - Dequeue/PeekFirst/PeekLast on an empty queue, or Peek
//	                with an index outside [0, Size).
package pqueue

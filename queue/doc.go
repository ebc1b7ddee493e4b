// Package queue implements a bounded FIFO task queue of depth D, backed
// by a fixed-size ring and two counting semaphores for backpressure.
//
// What:
//
//   - Queue: Enqueue/TryEnqueue/Dequeue/TryDequeue over a fixed-capacity
//     ring of func() values.
//
// Why:
//
//   - remaining_space and items_produced, both sized to D, give
//     producers and consumers a wait-free way to block on "queue full"
//     and "queue empty" without polling, while a short mutex-guarded
//     section protects the ring itself.
//
// Complexity:
//
//	Enqueue/Dequeue: O(1) plus whatever time the semaphore wait takes.
//
// Errors:
//
//	New panics if given a non-positive depth: a zero-or-negative-capacity
//	queue is a construction-time programmer error, not a runtime one.
package queue

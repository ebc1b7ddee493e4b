// Package pool implements a bounded-depth worker pool: a fixed number of
// workers pulling from a shared queue.Queue, with a shutdown protocol
// that guarantees no in-flight task is abandoned.
//
// What:
//
//   - Pool: New(w, q) starts w workers, each looping on a blocking
//     Dequeue; Submit enqueues a task, falling back to running a task
//     itself if the queue is momentarily full; Stop drains and joins
//     every worker.
//
// Why:
//
//   - Because Submit can block when the queue is full, a naive shutdown
//     that simply signals "stop" risks leaving a worker asleep on
//     items_produced forever. The sentinel-barrier protocol (see
//     stop.go) guarantees every worker observes the stop signal only
//     after finishing whatever task it was already running.
//
// Errors:
//
//	Submit/Stop never fail for expected contention: a full queue makes
//	Submit run a task itself, and Stop blocks until the drain finishes.
//	New panics on a non-positive worker count, matching queue.New.
package pool

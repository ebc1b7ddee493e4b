// Package waitsem implements the atomic-wait substrate the bounded queue
// and worker pool are built on: a sleeping boolean Flag, and a counting
// Semaphore.
//
// What:
//
//   - Flag: a boolean that goroutines can sleep on instead of spinning,
//     used for the worker pool's cooperative stop signal.
//   - Semaphore: a counting semaphore over golang.org/x/sync/semaphore,
//     used in pairs by the bounded queue (remaining_space / items_produced).
//
// Why:
//
//   - The queue and the worker pool need suspension points that don't
//     busy-wait an OS thread; this package supplies the queue's two
//     semaphores and the pool's stop flag. The cut engine never blocks.
//
// This is the user-space analogue of a futex wait/wake pair. The
// contention table a real futex implementation carries is internal to
// the sleeping primitive and is not surfaced here.
package waitsem

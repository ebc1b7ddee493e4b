// File: semaphore.go
// Role: Semaphore — a counting semaphore of weight 1 per unit, thin
//       enough that the bounded queue can hold two of them
//       (remaining_space, items_produced) without duplicating logic.
package waitsem

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Semaphore is a counting semaphore where every Acquire/Release moves
// exactly one unit — the bounded queue never moves more than one item
// per call.
type Semaphore struct {
	w *semaphore.Weighted
}

// NewSemaphore returns a Semaphore with the given total capacity, all of
// it immediately available.
func NewSemaphore(capacity int64) *Semaphore {
	return &Semaphore{w: semaphore.NewWeighted(capacity)}
}

// NewDrainedSemaphore returns a Semaphore with the given total capacity
// and no units initially available: every Acquire must be paid for by a
// prior Release. This is the items_produced side of a producer/consumer
// pair — the queue starts empty.
func NewDrainedSemaphore(capacity int64) *Semaphore {
	s := NewSemaphore(capacity)
	if !s.w.TryAcquire(capacity) {
		panic("waitsem: fresh semaphore refused its own capacity")
	}
	return s
}

// Acquire blocks until a unit is available or ctx is done.
func (s *Semaphore) Acquire(ctx context.Context) error {
	return s.w.Acquire(ctx, 1)
}

// TryAcquire acquires a unit without blocking, reporting success.
func (s *Semaphore) TryAcquire() bool { return s.w.TryAcquire(1) }

// Release returns a unit to the semaphore.
func (s *Semaphore) Release() { s.w.Release(1) }

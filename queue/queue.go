// File: queue.go
// Role: Queue — a bounded MPMC task queue with semaphore backpressure.
// Concurrency: the ring itself is guarded by mu for the shortest possible
//   critical section (index arithmetic and a single slot write/read);
//   blocking/backpressure is delegated entirely to the two semaphores.
package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/concurrent-aig/aigcut/internal/waitsem"
)

// Task is the unit of work a Queue carries.
type Task func()

// Queue is a bounded FIFO of depth D with counting-semaphore
// backpressure. The zero value is not usable; construct with New.
type Queue struct {
	mu   sync.Mutex
	ring []Task
	head int
	tail int

	remainingSpace *waitsem.Semaphore
	itemsProduced  *waitsem.Semaphore
}

// New constructs a Queue of depth d. It panics if d is not positive.
func New(d int) *Queue {
	if d <= 0 {
		panic(fmt.Sprintf("queue: depth must be positive, got %d", d))
	}
	return &Queue{
		ring:           make([]Task, d),
		remainingSpace: waitsem.NewSemaphore(int64(d)),
		itemsProduced:  waitsem.NewDrainedSemaphore(int64(d)),
	}
}

// Cap returns the queue's depth D.
func (q *Queue) Cap() int { return len(q.ring) }

func (q *Queue) pushLocked(t Task) {
	q.ring[q.tail] = t
	q.tail = (q.tail + 1) % len(q.ring)
}

func (q *Queue) popLocked() Task {
	t := q.ring[q.head]
	q.ring[q.head] = nil
	q.head = (q.head + 1) % len(q.ring)
	return t
}

// Enqueue blocks until there is room, then pushes t.
func (q *Queue) Enqueue(ctx context.Context, t Task) error {
	if err := q.remainingSpace.Acquire(ctx); err != nil {
		return err
	}
	q.mu.Lock()
	q.pushLocked(t)
	q.mu.Unlock()
	q.itemsProduced.Release()
	return nil
}

// TryEnqueue pushes t without blocking, reporting whether there was room.
func (q *Queue) TryEnqueue(t Task) bool {
	if !q.remainingSpace.TryAcquire() {
		return false
	}
	q.mu.Lock()
	q.pushLocked(t)
	q.mu.Unlock()
	q.itemsProduced.Release()
	return true
}

// Dequeue blocks until an item is available, then pops it.
func (q *Queue) Dequeue(ctx context.Context) (Task, error) {
	if err := q.itemsProduced.Acquire(ctx); err != nil {
		return nil, err
	}
	q.mu.Lock()
	t := q.popLocked()
	q.mu.Unlock()
	q.remainingSpace.Release()
	return t, nil
}

// TryDequeue pops an item without blocking, reporting whether one was
// available.
func (q *Queue) TryDequeue() (Task, bool) {
	if !q.itemsProduced.TryAcquire() {
		return nil, false
	}
	q.mu.Lock()
	t := q.popLocked()
	q.mu.Unlock()
	q.remainingSpace.Release()
	return t, true
}

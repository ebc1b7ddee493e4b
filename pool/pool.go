// File: pool.go
// Role: Pool — a fixed-size worker pool: each worker loops on a blocking
//       Dequeue and Submit falls back to running a task itself when the
//       queue is momentarily full.
// Concurrency: Submit/Stop are safe to call from any number of
//   goroutines, including from within a task running on one of the
//   pool's own workers (see Submit's cooperative-progress loop).
package pool

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/concurrent-aig/aigcut/internal/waitsem"
	"github.com/concurrent-aig/aigcut/queue"
)

// Pool runs a fixed number of workers draining a shared queue.Queue.
//
// The zero value is not usable; construct with New.
type Pool struct {
	q       *queue.Queue
	workers int
	logger  *logrus.Logger

	stopFlag *waitsem.Flag
	done     chan struct{} // closed once every worker has exited
	stopOnce sync.Once
}

// New starts a Pool of w workers draining q. It panics if w is not
// positive, matching queue.New's panic-on-invariant-breach style.
func New(w int, q *queue.Queue, opts ...Option) (*Pool, error) {
	if w <= 0 {
		panic(fmt.Sprintf("pool: worker count must be positive, got %d", w))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	p := &Pool{
		q:        q,
		workers:  w,
		logger:   cfg.logger,
		stopFlag: waitsem.NewFlag(),
		done:     make(chan struct{}),
	}

	exited := make(chan struct{}, w)
	for i := 0; i < w; i++ {
		go p.runWorker(i, exited)
	}
	go func() {
		for i := 0; i < w; i++ {
			<-exited
		}
		close(p.done)
	}()

	p.logger.WithField("workers", w).Debug("pool: started")
	return p, nil
}

// runWorker is a single worker's main loop: block on Dequeue, run the
// task, and after each task check whether a stop has been requested. On
// stop it drains the remaining queue via TryDequeue before exiting, so
// no task already in the queue is ever abandoned.
func (p *Pool) runWorker(id int, exited chan<- struct{}) {
	defer func() { exited <- struct{}{} }()

	for {
		task, err := p.q.Dequeue(context.Background())
		if err != nil {
			// context.Background() never cancels; this is unreachable in
			// practice but Dequeue's signature can still report an error.
			return
		}
		task()

		if p.stopFlag.IsSet() {
			p.drain()
			p.logger.WithField("worker", id).Debug("pool: worker stopped")
			return
		}
	}
}

func (p *Pool) drain() {
	for {
		task, ok := p.q.TryDequeue()
		if !ok {
			return
		}
		task()
	}
}

// makeProgress runs at most one pending task without blocking. It is
// the cooperative-progress step Submit falls back to when the queue is
// full, so a task that itself calls Submit from a worker goroutine
// cannot deadlock against its own pool.
func (p *Pool) makeProgress() {
	if task, ok := p.q.TryDequeue(); ok {
		task()
	}
}

// Submit enqueues task, blocking only in the sense that it keeps making
// progress (running one pending task itself) until there is room —
// never by parking on a semaphore the caller itself might need to drain.
func (p *Pool) Submit(task queue.Task) {
	for !p.q.TryEnqueue(task) {
		p.makeProgress()
	}
}

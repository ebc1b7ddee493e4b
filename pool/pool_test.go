package pool_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/concurrent-aig/aigcut/pool"
	"github.com/concurrent-aig/aigcut/queue"
)

func TestNewPanicsOnNonPositiveWorkerCount(t *testing.T) {
	q := queue.New(4)
	require.Panics(t, func() { pool.New(0, q) })
	require.Panics(t, func() { pool.New(-1, q) })
}

func TestSubmitRunsEveryTask(t *testing.T) {
	q := queue.New(8)
	p, err := pool.New(4, q)
	require.NoError(t, err)

	const total = 256
	var counter int64
	for i := 0; i < total; i++ {
		p.Submit(func() { atomic.AddInt64(&counter, 1) })
	}
	p.Stop()

	require.Equal(t, int64(total), atomic.LoadInt64(&counter))
}

func TestStopIsIdempotent(t *testing.T) {
	q := queue.New(4)
	p, err := pool.New(2, q)
	require.NoError(t, err)

	var counter int64
	p.Submit(func() { atomic.AddInt64(&counter, 1) })
	p.Stop()
	p.Stop() // must not block or panic

	require.Equal(t, int64(1), atomic.LoadInt64(&counter))
}

// TestSubmitFromWorkerDoesNotDeadlock exercises the cooperative-progress
// path: a task submitted from within a worker, against a queue too
// small to hold it directly, must make progress via make_progress
// instead of blocking forever on the pool's own workers.
func TestSubmitFromWorkerDoesNotDeadlock(t *testing.T) {
	q := queue.New(1)
	p, err := pool.New(1, q)
	require.NoError(t, err)

	done := make(chan struct{})
	p.Submit(func() {
		p.Submit(func() {}) // fills the depth-1 queue
		p.Submit(func() { close(done) })
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("nested Submit deadlocked")
	}
	p.Stop()
}

package pool_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concurrent-aig/aigcut/pool"
	"github.com/concurrent-aig/aigcut/queue"
)

// TestManyProducersSubmitConcurrently checks that many goroutines can
// submit concurrently to a shared pool and every task runs exactly once
// before Stop returns.
func TestManyProducersSubmitConcurrently(t *testing.T) {
	q := queue.New(16)
	p, err := pool.New(6, q)
	require.NoError(t, err)

	const total = 256
	var counter int64
	var producers sync.WaitGroup
	producers.Add(total)
	for i := 0; i < total; i++ {
		go func() {
			defer producers.Done()
			p.Submit(func() { atomic.AddInt64(&counter, 1) })
		}()
	}
	producers.Wait()
	p.Stop()

	require.Equal(t, int64(total), atomic.LoadInt64(&counter))
}

// TestStopWaitsForInFlightTasks checks that Stop never returns while a
// worker is still mid-task: every task's side effect must be visible by
// the time Stop returns.
func TestStopWaitsForInFlightTasks(t *testing.T) {
	q := queue.New(4)
	p, err := pool.New(3, q)
	require.NoError(t, err)

	var flags [100]atomic.Bool
	for i := range flags {
		i := i
		p.Submit(func() { flags[i].Store(true) })
	}
	p.Stop()

	for i := range flags {
		require.True(t, flags[i].Load(), "task %d did not complete before Stop returned", i)
	}
}

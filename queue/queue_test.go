package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/concurrent-aig/aigcut/queue"
)

func TestNewPanicsOnNonPositiveDepth(t *testing.T) {
	require.Panics(t, func() { queue.New(0) })
	require.Panics(t, func() { queue.New(-1) })
}

func TestTryEnqueueTryDequeueFIFO(t *testing.T) {
	q := queue.New(4)
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		require.True(t, q.TryEnqueue(func() { order = append(order, i) }))
	}

	for i := 0; i < 3; i++ {
		task, ok := q.TryDequeue()
		require.True(t, ok)
		task()
	}
	require.Equal(t, []int{0, 1, 2}, order)

	_, ok := q.TryDequeue()
	require.False(t, ok, "queue should be empty")
}

func TestTryEnqueueFailsWhenFull(t *testing.T) {
	q := queue.New(2)
	require.True(t, q.TryEnqueue(func() {}))
	require.True(t, q.TryEnqueue(func() {}))
	require.False(t, q.TryEnqueue(func() {}), "queue at capacity")
}

func TestEnqueueBlocksUntilSpaceFreed(t *testing.T) {
	q := queue.New(1)
	require.True(t, q.TryEnqueue(func() {}))

	done := make(chan struct{})
	go func() {
		require.NoError(t, q.Enqueue(context.Background(), func() {}))
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Enqueue returned before space was freed")
	case <-time.After(20 * time.Millisecond):
	}

	_, ok := q.TryDequeue()
	require.True(t, ok)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue did not unblock after a slot freed")
	}
}

func TestDequeueBlocksUntilItemAvailable(t *testing.T) {
	q := queue.New(2)
	received := make(chan int, 1)
	go func() {
		task, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		task()
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, q.Enqueue(context.Background(), func() { received <- 1 }))

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("blocked Dequeue never observed the enqueued item")
	}
}

func TestEnqueueRespectsContext(t *testing.T) {
	q := queue.New(1)
	require.True(t, q.TryEnqueue(func() {}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, func() {})
	require.Error(t, err)
}

func TestCap(t *testing.T) {
	q := queue.New(5)
	require.Equal(t, 5, q.Cap())
}

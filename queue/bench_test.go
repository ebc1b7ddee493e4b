package queue_test

import (
	"testing"

	"github.com/concurrent-aig/aigcut/queue"
)

func BenchmarkTryEnqueueTryDequeue(b *testing.B) {
	q := queue.New(1024)
	noop := func() {}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.TryEnqueue(noop)
		q.TryDequeue()
	}
}

package pool_test

import (
	"sync/atomic"
	"testing"

	"github.com/concurrent-aig/aigcut/pool"
	"github.com/concurrent-aig/aigcut/queue"
)

func BenchmarkSubmit(b *testing.B) {
	q := queue.New(1024)
	p, err := pool.New(8, q)
	if err != nil {
		b.Fatal(err)
	}
	var counter int64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Submit(func() { atomic.AddInt64(&counter, 1) })
	}
	b.StopTimer()
	p.Stop()
}

package queue_test

import (
	"context"
	"fmt"

	"github.com/concurrent-aig/aigcut/queue"
)

func Example() {
	q := queue.New(4)
	_ = q.TryEnqueue(func() { fmt.Println("hello") })

	task, err := q.Dequeue(context.Background())
	if err != nil {
		panic(err)
	}
	task()
	// Output: hello
}

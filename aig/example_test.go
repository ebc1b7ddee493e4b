package aig_test

import (
	"fmt"

	"github.com/concurrent-aig/aigcut/aig"
)

// Example builds a two-input AND and declares it as a primary output,
// mirroring the shape a netlist parser drives the Network through.
func Example() {
	n, err := aig.New()
	if err != nil {
		panic(err)
	}

	x1 := n.CreatePI()
	x2 := n.CreatePI()
	y := n.CreateAND(x1, x2)
	n.CreatePO(y)

	stats := n.Stats()
	fmt.Println(stats.PICount, stats.ANDCount, stats.POCount)
	// Output: 2 1 1
}

package netlist_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/concurrent-aig/aigcut/aig"
	"github.com/concurrent-aig/aigcut/netlist"
)

// buildReductionTreeSource returns a netlist source that ANDs together
// width primary inputs pairwise down to a single output.
func buildReductionTreeSource(width int) string {
	var b strings.Builder
	names := make([]string, width)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i)
		fmt.Fprintf(&b, "input %s;\n", names[i])
	}

	level := names
	gen := 0
	for len(level) > 1 {
		var next []string
		for i := 0; i+1 < len(level); i += 2 {
			name := fmt.Sprintf("g%d_%d", gen, i/2)
			fmt.Fprintf(&b, "%s = %s & %s;\n", name, level[i], level[i+1])
			next = append(next, name)
		}
		level = next
		gen++
	}
	fmt.Fprintf(&b, "output %s;\n", level[0])
	return b.String()
}

func BenchmarkParseReductionTree(b *testing.B) {
	src := buildReductionTreeSource(256)
	p, err := netlist.NewParser(netlist.WithSink(netlist.DiscardSink))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, err := aig.New()
		if err != nil {
			b.Fatal(err)
		}
		if err := p.ParseString(n, src); err != nil {
			b.Fatal(err)
		}
	}
}

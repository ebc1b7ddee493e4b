package cut_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concurrent-aig/aigcut/aig"
	"github.com/concurrent-aig/aigcut/cut"
)

// TestManyWorkersRaceOneRoot races many goroutines for the same root node
// and checks exactly one receives a non-empty cut.
func TestManyWorkersRaceOneRoot(t *testing.T) {
	n, root, _ := buildFanoutNetwork(t)
	e, err := cut.NewEngine(n)
	require.NoError(t, err)

	const workers = 32
	results := make([]cut.Cut, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer wg.Done()
			results[i] = e.CreateCut(root, uint32(i+1))
		}()
	}
	wg.Wait()

	winners := 0
	for _, c := range results {
		if !c.Empty() {
			winners++
		}
	}
	require.Equal(t, 1, winners)
}

// TestDisjointRootsProceedWithoutContention drives cut enumeration across
// many independent AIGs concurrently, as a worker pool would.
func TestDisjointRootsProceedWithoutContention(t *testing.T) {
	const networks = 16
	var wg sync.WaitGroup
	wg.Add(networks)
	for i := 0; i < networks; i++ {
		go func(threadID uint32) {
			defer wg.Done()
			n, err := aig.New()
			require.NoError(t, err)
			x0 := n.CreatePI()
			x1 := n.CreatePI()
			and := n.CreateAND(x0, x1)

			e, err := cut.NewEngine(n)
			require.NoError(t, err)
			c := e.CreateCut(and.Index(), threadID)
			require.False(t, c.Empty())
			e.ReleaseCut(and.Index(), threadID)
		}(uint32(i + 1))
	}
	wg.Wait()
}

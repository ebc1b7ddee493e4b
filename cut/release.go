// File: release.go
// Role: ReleaseCut — clears every mark a CreateCut call acquired.
// AI-HINT (file): implemented as an explicit work-list rather than the
//   natural recursive walk, because the claimed subtree of a deep AIG can
//   be tens of thousands of nodes deep and would overflow the stack;
//   semantics are identical to the recursive version.
package cut

import "github.com/concurrent-aig/aigcut/aig"

// ReleaseCut clears the mark of every node in the subtree rooted at n
// that CreateCut(n, threadID) claimed. Primary inputs a cut claimed as
// leaves are cleared like any other node; the walk stops at them without
// special-casing because they have no fanins to push.
func (e *Engine) ReleaseCut(n uint32, threadID uint32) {
	work := []uint32{n}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		if e.graph.MarkOwner(cur) != threadID {
			continue
		}
		e.graph.ResetMark(cur)

		e.graph.ForeachFanin(cur, func(s aig.Signal) {
			work = append(work, e.graph.GetNode(s))
		})
	}
}

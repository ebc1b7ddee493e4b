// File: engine.go
// Role: Engine — create_cut/expand0/select_next_fanin/expand, the
//       concurrent cut-enumeration algorithm proper.
// Determinism: selectNextFanin's tie-break chain (refcount, then
//   fanout_size, then first-seen order) is a strict total order over
//   candidates, so its result never depends on Go's randomized map
//   iteration order.
// Concurrency: every Engine method is safe to call from many goroutines
//   at once against the same *aig.Network, each with its own thread id;
//   see aig.Network's "Lifecycle" doc comment for the build/query split
//   this all assumes.
package cut

import "github.com/concurrent-aig/aigcut/aig"

// Engine runs bounded cut enumeration over a single Network.
type Engine struct {
	graph     *aig.Network
	sizeLimit int
}

// NewEngine constructs an Engine over graph.
func NewEngine(graph *aig.Network, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Engine{graph: graph, sizeLimit: cfg.sizeLimit}, nil
}

// CreateCut attempts to claim n for threadID and grow a bounded cut
// rooted at it. An empty Cut means the claim was denied — the caller
// should retry later or move on to a different node.
func (e *Engine) CreateCut(n uint32, threadID uint32) Cut {
	if threadID == 0 {
		panic("cut: thread id 0 is reserved for unclaimed")
	}
	if !e.graph.CheckAndMark(n, threadID) {
		return Cut{}
	}

	state := newCutState(n)
	e.expand(state, threadID)
	return Cut{Leaves: state.snapshot()}
}

// isTrivial reports whether every leaf is a PI or the constant.
func (e *Engine) isTrivial(state *cutState) bool {
	for _, x := range state.leaves {
		if !e.graph.IsConstant(x) && !e.graph.IsPI(x) {
			return false
		}
	}
	return true
}

// expand0 repeatedly replaces non-PI leaves with their fanins whenever
// doing so is cost-free: at most one fanin of the leaf lies outside the
// claimed set, and that one fanin can be claimed. It runs to a fixed
// point and reports whether the resulting cut is trivial.
//
// Membership is decided by the live mark word, not by a per-pass
// snapshot: on reconvergent fanout, a fanin claimed earlier in the same
// pass must already count as inside when a second parent of it is
// processed, or that parent would re-claim it (same-owner reclaim is
// idempotent) and append it to the cut twice.
func (e *Engine) expand0(state *cutState, threadID uint32) bool {
	for {
		changed := false
		var kept, pending []uint32

		for _, x := range state.leaves {
			if e.graph.IsConstant(x) || e.graph.IsPI(x) {
				kept = append(kept, x)
				continue
			}

			var insideCount int
			var outside uint32
			hasOutside := false
			e.graph.ForeachFanin(x, func(s aig.Signal) {
				fi := e.graph.GetNode(s)
				switch {
				case e.graph.IsConstant(fi), e.graph.MarkOwner(fi) == threadID:
					insideCount++
				default:
					outside, hasOutside = fi, true
				}
			})

			if insideCount+1 < e.graph.FaninSize(x) {
				// two or more fanins outside: not cost-free, keep x.
				kept = append(kept, x)
				continue
			}

			if !hasOutside {
				// every fanin already inside: x collapses away.
				changed = true
				continue
			}

			if e.graph.CheckAndMark(outside, threadID) {
				pending = append(pending, outside)
				changed = true
				continue
			}
			// outside fanin claimed by another thread: x must stay,
			// preserving the cut's covering invariant.
			kept = append(kept, x)
		}

		kept = append(kept, pending...)
		state.replace(kept)
		if !changed {
			break
		}
	}
	return e.isTrivial(state)
}

// selectNextFanin picks the best candidate to bring into a non-trivial
// cut: the fanin referenced by the most current leaves, ties broken by
// highest fanout_size in the graph, then by first-seen order. Candidates
// already present in the cut are excluded, since bringing one "in" again
// would be a no-op that duplicates a leaf.
func (e *Engine) selectNextFanin(state *cutState) (uint32, bool) {
	refcount := make(map[uint32]int)
	firstSeen := make(map[uint32]int)
	order := 0

	for _, x := range state.leaves {
		if e.graph.IsConstant(x) || e.graph.IsPI(x) {
			continue
		}
		e.graph.ForeachFanin(x, func(s aig.Signal) {
			fi := e.graph.GetNode(s)
			if e.graph.IsConstant(fi) || state.inSet[fi] {
				return
			}
			if _, ok := firstSeen[fi]; !ok {
				firstSeen[fi] = order
				order++
			}
			refcount[fi]++
		})
	}

	var best uint32
	found := false
	for candidate, rc := range refcount {
		if !found || better(rc, e.graph.FanoutSize(candidate), firstSeen[candidate],
			refcount[best], e.graph.FanoutSize(best), firstSeen[best]) {
			best, found = candidate, true
		}
	}
	return best, found
}

func better(rcA int, fanoutA uint32, firstA int, rcB int, fanoutB uint32, firstB int) bool {
	if rcA != rcB {
		return rcA > rcB
	}
	if fanoutA != fanoutB {
		return fanoutA > fanoutB
	}
	return firstA < firstB
}

// expand runs the bounded best-fanin growth loop atop an already-claimed
// seed cut: grow by the best candidate, re-run expand0, and remember the
// most recent cut that stayed within the size limit.
func (e *Engine) expand(state *cutState, threadID uint32) {
	trivial := e.expand0(state, threadID)

	var bestCut []uint32
	if len(state.leaves) <= e.sizeLimit {
		bestCut = state.snapshot()
	}

	oversize := 0
	for !trivial && oversize < maxOversizeIterations {
		candidate, ok := e.selectNextFanin(state)
		if !ok {
			panic("cut: select_next_fanin called on a trivial cut")
		}

		if e.graph.CheckAndMark(candidate, threadID) {
			state.push(candidate)
		}

		trivial = e.expand0(state, threadID)

		if len(state.leaves) > e.sizeLimit {
			oversize++
		} else {
			oversize = 0
			bestCut = state.snapshot()
		}
	}

	if bestCut != nil {
		state.replace(bestCut)
	}
}

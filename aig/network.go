// File: network.go
// Role: Network — the append-only AIG store: structural hashing, node
//       creation, accessors, and the atomic per-node mark used by the
//       sibling cut package.
// Determinism: CreateAND's trivial-rule rewrites and structural-hash
//   lookup are pure functions of the (ordered) fanin pair, so rebuilding
//   the same sequence of create_* calls always yields an isomorphic graph.
// Concurrency: New/CreatePI/CreateAND/CreatePO are build-phase operations
//   and are NOT safe for concurrent use. Once building is finished, every
//   read accessor and CheckAndMark/MarkOwner/ResetMark may be called from any
//   number of goroutines concurrently (see doc.go "Lifecycle").
// AI-HINT (file): the constant-0 node occupies index 0 like any other
//   node (nodes[0] is a real, always-present *node) so that refCount
//   bookkeeping never needs a special case for "fanin is the constant".
package aig

import (
	"fmt"
	"math"
)

// Network is an append-only And-Inverter Graph.
//
// The zero value is not usable; construct with New.
type Network struct {
	nodes []*node          // index 0 is the constant-0 node
	pis   []uint32         // node indices of primary inputs, creation order
	pos   []Signal         // primary output signals, declaration order
	hash  map[uint64]uint32 // ordered-fanin-pair key -> AND node index
}

// New constructs an empty Network with a single constant-0 node.
func New(opts ...Option) (*Network, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	n := &Network{
		nodes: make([]*node, 1, cfg.initialCapacity),
		hash:  make(map[uint64]uint32, cfg.initialCapacity),
	}
	n.nodes[0] = &node{}
	return n, nil
}

// GetConstant returns the signal for the constant node: value=false is
// constant-0, value=true is constant-1 (index 0, complemented).
func (n *Network) GetConstant(value bool) Signal { return newSignal(0, value) }

func (n *Network) ensureCapacityForOne() {
	if len(n.nodes)+1 <= int(0.9*float64(cap(n.nodes))) {
		return
	}
	newCap := int(math.Ceil(math.Pi * float64(cap(n.nodes))))
	if newCap <= cap(n.nodes) {
		newCap = cap(n.nodes) + 1
	}
	grown := make([]*node, len(n.nodes), newCap)
	copy(grown, n.nodes)
	n.nodes = grown
}

// CreatePI allocates a new primary input and returns its non-inverted
// signal.
func (n *Network) CreatePI() Signal {
	n.ensureCapacityForOne()
	ordinal := uint32(len(n.pis))
	idx := uint32(len(n.nodes))
	n.nodes = append(n.nodes, &node{fanin0: ordinal, fanin1: ordinal})
	n.pis = append(n.pis, idx)
	return newSignal(idx, false)
}

func (n *Network) valid(s Signal) bool { return int(s.Index()) < len(n.nodes) }

func faninKey(lo, hi Signal) uint64 {
	return uint64(lo.raw())<<32 | uint64(hi.raw())
}

// CreateAND returns the signal for the AND of a and b, applying the
// trivial simplification rules and structural-hash deduplication before
// allocating a new node. It panics if either operand refers to a node
// that hasn't been created — a build-time programmer error, not a
// condition a caller can recover from.
func (n *Network) CreateAND(a, b Signal) Signal {
	if !n.valid(a) || !n.valid(b) {
		panic(fmt.Sprintf("aig: CreateAND(%s, %s): signal refers to an unknown node", a, b))
	}

	if a == b {
		return a
	}
	if a == b.Negated() {
		return n.GetConstant(false)
	}
	if a.Index() == 0 {
		if a.IsComplemented() {
			return b
		}
		return n.GetConstant(false)
	}
	if b.Index() == 0 {
		if b.IsComplemented() {
			return a
		}
		return n.GetConstant(false)
	}

	lo, hi := a, b
	if hi.Less(lo) {
		lo, hi = hi, lo
	}

	key := faninKey(lo, hi)
	if existing, ok := n.hash[key]; ok {
		return newSignal(existing, false)
	}

	n.ensureCapacityForOne()
	idx := uint32(len(n.nodes))
	n.nodes = append(n.nodes, &node{fanin0: lo.raw(), fanin1: hi.raw()})
	n.hash[key] = idx
	n.nodes[lo.Index()].refCount++
	n.nodes[hi.Index()].refCount++
	return newSignal(idx, false)
}

// CreatePO declares s as a primary output. Like CreateAND, it panics on
// a signal that refers to an unknown node.
func (n *Network) CreatePO(s Signal) {
	if !n.valid(s) {
		panic(fmt.Sprintf("aig: CreatePO(%s): signal refers to an unknown node", s))
	}
	n.pos = append(n.pos, s)
	n.nodes[s.Index()].refCount++
}

// IsConstant reports whether idx is the constant-0 node.
func (n *Network) IsConstant(idx uint32) bool { return idx == 0 }

// IsPI reports whether idx is a primary input.
func (n *Network) IsPI(idx uint32) bool {
	if idx == 0 || int(idx) >= len(n.nodes) {
		return false
	}
	return n.nodes[idx].isPISentinel(uint32(len(n.pis)))
}

// IsAnd reports whether idx is an AND node.
func (n *Network) IsAnd(idx uint32) bool {
	return idx != 0 && !n.IsPI(idx)
}

// GetNode returns the node index a signal refers to.
func (n *Network) GetNode(s Signal) uint32 { return s.Index() }

// MakeSignal returns the non-inverted signal for node idx.
func (n *Network) MakeSignal(idx uint32) Signal { return newSignal(idx, false) }

// FaninSize returns the number of fanins of idx: 0 for the constant and
// primary inputs, 2 for AND nodes.
func (n *Network) FaninSize(idx uint32) int {
	if n.IsAnd(idx) {
		return 2
	}
	return 0
}

// FanoutSize returns how many times idx is used as a fanin or primary
// output, i.e. its reference count.
func (n *Network) FanoutSize(idx uint32) uint32 { return n.nodes[idx].refCount }

// NumPIs returns the number of primary inputs created so far.
func (n *Network) NumPIs() uint32 { return uint32(len(n.pis)) }

// NumPOs returns the number of primary outputs declared so far.
func (n *Network) NumPOs() int { return len(n.pos) }

// Size returns the total number of nodes, including the constant.
func (n *Network) Size() int { return len(n.nodes) }

// PO returns the i'th primary output signal.
func (n *Network) PO(i int) (Signal, error) {
	if i < 0 || i >= len(n.pos) {
		return 0, ErrNoSuchPO
	}
	return n.pos[i], nil
}

// ForeachFanin calls f with each of idx's fanin signals, in fanin0-then-
// fanin1 order. It does nothing for the constant node and primary inputs.
func (n *Network) ForeachFanin(idx uint32, f func(Signal)) {
	if !n.IsAnd(idx) {
		return
	}
	nd := n.nodes[idx]
	f(signalFromRaw(nd.fanin0))
	f(signalFromRaw(nd.fanin1))
}

// ForeachNode calls f with every node index in creation order, including
// the constant at index 0.
func (n *Network) ForeachNode(f func(idx uint32)) {
	for i := range n.nodes {
		f(uint32(i))
	}
}

// CheckAndMark attempts to claim idx for threadID, succeeding either if
// idx was unclaimed (mark becomes threadID) or already claimed by
// threadID itself (idempotent reclaim). It reports false if another
// thread holds the claim, and panics on thread id 0, which is reserved
// to mean "unclaimed".
func (n *Network) CheckAndMark(idx uint32, threadID uint32) bool {
	if threadID == 0 {
		panic("aig: thread id 0 is reserved for unclaimed")
	}
	m := &n.nodes[idx].mark
	if m.CompareAndSwap(0, threadID) {
		return true
	}
	return m.Load() == threadID
}

// ResetMark releases idx's claim, making it available to any thread.
func (n *Network) ResetMark(idx uint32) { n.nodes[idx].mark.Store(0) }

// MarkOwner returns the current owner of idx's mark, or 0 if unclaimed.
func (n *Network) MarkOwner(idx uint32) uint32 { return n.nodes[idx].mark.Load() }

// Stats summarizes a Network's composition.
type Stats struct {
	NodeCount     int
	PICount       int
	ANDCount      int
	POCount       int
	NodeFillRatio float64 // len(nodes) / cap(nodes); see the π-growth policy
}

// Stats reports node/PI/AND/PO counts and the node array's current fill
// ratio against its backing capacity.
func (n *Network) Stats() Stats {
	return Stats{
		NodeCount:     len(n.nodes),
		PICount:       len(n.pis),
		ANDCount:      len(n.nodes) - 1 - len(n.pis),
		POCount:       len(n.pos),
		NodeFillRatio: float64(len(n.nodes)) / float64(cap(n.nodes)),
	}
}

// Fanouts builds the set of node indices that use idx as a direct fanin.
// This is not an indexed operation: it scans every AND node once. Callers
// that need repeated fanout queries should build and cache their own side
// index instead of calling this in a loop.
func (n *Network) Fanouts(idx uint32) []uint32 {
	var out []uint32
	n.ForeachNode(func(candidate uint32) {
		if !n.IsAnd(candidate) {
			return
		}
		n.ForeachFanin(candidate, func(s Signal) {
			if s.Index() == idx {
				out = append(out, candidate)
			}
		})
	})
	return out
}

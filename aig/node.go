// File: node.go
// Role: node — the per-index storage record backing a Network: constant-0,
//       primary input, or AND-gate encoding, plus the atomic mark word used
//       by concurrent cut-enumeration workers.
// Concurrency: fanin0/fanin1/refCount are write-once during the build phase
//   and read-only afterward; mark is the only field mutated post-build, and
//   only through CAS (see CheckAndMark/ResetMark in network.go).
package aig

import "sync/atomic"

// node is the fixed-size record stored for every index in a Network.
//
// Index 0 is always the constant-0 node. Network.nodes[0] is a real node
// value like any other (zero fanins, its own refCount and mark), so node
// indices line up 1:1 with slice positions.
//
// For a primary input, fanin0 and fanin1 both hold the PI's 0-based
// creation ordinal (not a packed Signal) — this is the "self sentinel"
// is_pi relies on: a genuine AND node can never have fanin0 == fanin1,
// because create_and's trivial-rule collapsing (see network.go) never
// lets an AND node be built from two equal-index operands.
//
// For an AND node, fanin0 and fanin1 hold fully packed Signal values.
type node struct {
	fanin0, fanin1 uint32
	refCount       uint32
	mark           atomic.Uint32
}

// isPISentinel reports whether this node's fanins encode a PI self-sentinel
// for a network whose current PI count is numPIs.
func (n *node) isPISentinel(numPIs uint32) bool {
	return n.fanin0 == n.fanin1 && n.fanin0 < numPIs
}

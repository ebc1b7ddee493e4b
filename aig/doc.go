// Package aig implements an And-Inverter Graph: a compact representation of
// a Boolean logic network in which every internal node computes the AND of
// two, possibly inverted, fanin signals.
//
// What:
//
//   - Signal: a (node index, complement) pair — the AIG's edge type.
//   - Network: an append-only store of nodes (constant-0, primary inputs,
//     AND nodes) with structural hashing, so structurally identical AND
//     gates are deduplicated at construction time.
//   - Per-node atomic mark: a 32-bit word used by concurrent cut-enumeration
//     workers (see the sibling cut package) to claim exclusive exploration
//     rights over a node without taking a lock on the graph itself.
//
// Why:
//
//   - Structural hashing keeps logically-equivalent sub-networks collapsed
//     to a single node, which is what makes downstream cut enumeration
//     (and any other AIG analysis) tractable on large netlists.
//   - The atomic mark is the only piece of per-node state that changes
//     after the graph is built, and it changes under CAS, not a lock — so
//     many goroutines can explore disjoint or overlapping regions of the
//     same DAG without any of them blocking on the others for graph access.
//
// Lifecycle:
//
//   - Build phase: a single goroutine (typically a netlist parser, see the
//     sibling netlist package) calls CreatePI / CreateAND / CreatePO. This
//     phase is not safe for concurrent use.
//   - Query phase: once built, the Network is logically frozen — node
//     storage and the structural-hash index are read-only. Any number of
//     goroutines may call the read accessors and CheckAndMark/MarkOwner/ResetMark
//     concurrently.
//
// Complexity:
//
//   - CreateAND: O(1) amortized (hash lookup + occasional append).
//   - CheckAndMark / MarkOwner / ResetMark: O(1), wait-free on the fast paths.
//
// Errors:
//
//	Build-time invariant breaches — a fanin signal referring to a node
//	that hasn't been created yet, thread id 0 passed to CheckAndMark
//	(reserved for "unclaimed") — are programmer errors and panic; they
//	are never surfaced as recoverable error values. ErrNoSuchPO is the
//	one checkable sentinel, for out-of-range primary-output access.
package aig

// Package cut implements bounded k-feasible cut enumeration over an
// github.com/concurrent-aig/aigcut/aig Network, for concurrent use by a
// worker pool.
//
// What:
//
//   - Cut: an ordered set of node indices that covers every path from a
//     root node to the primary inputs.
//   - Engine.CreateCut: claims a root node and its covering subtree via
//     the Network's atomic mark, then grows the cut outward with a
//     best-fanin heuristic bounded by a target size.
//   - Engine.ReleaseCut: releases every mark a CreateCut call acquired.
//
// Why:
//
//   - Claiming nodes via Network.CheckAndMark before exploring them is
//     what lets many workers enumerate cuts over the same graph without
//     any of them taking a lock: a claim failure is a signal, not a
//     blocking wait.
//
// Complexity:
//
//   - CreateCut is bounded by the size limit and the oversize-iteration
//     cap; it does not walk the whole graph.
//   - ReleaseCut is O(size of the claimed subtree), via an explicit
//     work-list rather than recursion (see release.go).
//
// Errors:
//
//	Engine panics on invariant violations (selectNextFanin called on a
//	trivial cut, thread id 0) — these are programmer errors, not
//	something a caller can usefully recover from.
package cut

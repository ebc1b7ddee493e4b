package aig

import "errors"

// ErrNoSuchPO is returned by accessors that index into the primary
// output list out of range.
//
// Invariant breaches — an unknown fanin signal handed to CreateAND or
// CreatePO, thread id 0 passed to CheckAndMark — are programmer errors
// and panic instead of returning a checkable error: recovering from
// them would only move the corruption somewhere harder to diagnose.
var ErrNoSuchPO = errors.New("aig: primary output index out of range")

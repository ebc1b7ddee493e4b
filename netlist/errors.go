// netlist/errors.go — sentinel errors for the netlist package.
//
// Error policy:
//   - Only package-level sentinels are exposed.
//   - Callers branch with errors.Is, never string comparison.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context with fmt.Errorf("%w: ...").
package netlist

import "errors"

var (
	// ErrUnrecognizedStatement is returned (wrapped with the offending
	// line) when a source line is neither a declaration nor an
	// assignment. This is a fatal-severity diagnostic: the parse aborts.
	ErrUnrecognizedStatement = errors.New("netlist: unrecognized statement")

	// ErrMalformedExpression is returned when an assignment's
	// right-hand side isn't one of the supported shapes (alias, unary
	// NOT, or binary AND/OR). Also fatal: a recognizable-but-broken
	// assignment still can't be skipped safely, since later lines may
	// depend on the name it was meant to bind.
	ErrMalformedExpression = errors.New("netlist: malformed expression")
)

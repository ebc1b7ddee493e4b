// Package netlist implements the producer side of the engine: a minimal
// Verilog-subset textual format that drives an aig.Network purely
// through its public build-phase API (CreatePI / CreateAND / CreatePO).
//
// What:
//
//   - Parser: Parse reads `input <name>;` / `output <name>;`
//     declarations and `<name> = <expr>;` assignments line by line and
//     calls aig.Network's build methods in source order.
//   - Diagnostic / Severity / Sink: undefined-reference and
//     redeclaration problems surface through a pluggable sink instead of
//     failing the whole parse, at one of six severities (ignore, note,
//     remark, warning, error, fatal).
//
// Why:
//
//   - The AIG core is AND-only: `|` and unary `~` are sugar rewritten to
//     CreateAND plus complemented operands at parse time (De Morgan for
//     OR), so the core never observes anything outside its documented
//     surface.
//   - Per-line diagnostics let a caller drive the engine end to end in
//     tests and examples without a full production parser; the graph
//     itself never rejects anything structurally valid that the parser
//     hands it.
//
// Grammar (one statement per line, `//` starts a line comment):
//
//	input  <ident> ;
//	output <ident> ;
//	<ident> = [~]<ident> ;
//	<ident> = [~]<ident> ('&'|'|') [~]<ident> ;
//
// Complexity:
//
//	Parse is O(n) in the number of source lines; each statement does
//	O(1) map lookups against the name table.
//
// Errors:
//
//	Parse returns an error only when a `fatal`-severity diagnostic is
//	raised (an unrecognized statement shape). Undefined references and
//	redeclarations are reported via the Sink and otherwise skipped:
//	an error-severity diagnostic records and continues.
package netlist

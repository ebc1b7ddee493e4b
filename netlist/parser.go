// File: parser.go
// Role: Parser — the textual-netlist producer: it calls only
//       aig.Network's CreatePI / CreateAND / CreatePO, in the order
//       those statements appear in the source.
// Determinism: parsing the same source against a fresh Network always
//   issues the same sequence of build calls, since statements are
//   processed strictly in source order with no concurrency.
package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/concurrent-aig/aigcut/aig"
)

// Parser drives an aig.Network's build phase from the textual format
// documented in doc.go.
//
// The zero value is not usable; construct with NewParser.
type Parser struct {
	sink Sink
}

// NewParser constructs a Parser.
func NewParser(opts ...Option) (*Parser, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Parser{sink: cfg.sink}, nil
}

// bindings maps source identifiers to the signal they currently denote.
// "0" and "1" denote the constants: resolveOperand special-cases them
// before consulting bindings, so an entry under either name is never read.
type bindings map[string]aig.Signal

// Parse reads netlist source from r and issues CreatePI/CreateAND/
// CreatePO calls against net in source order. It returns an error only
// when a fatal-severity diagnostic is raised or reading r fails. The core's build calls
// panic on invariant breaches rather than returning errors, but every
// signal this producer hands them is one it resolved from net itself,
// so those panics are unreachable from here.
func (p *Parser) Parse(net *aig.Network, r io.Reader) error {
	binds := bindings{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.parseLine(net, binds, lineNo, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ParseString is a convenience wrapper around Parse for in-memory
// source, used throughout this module's tests and examples.
func (p *Parser) ParseString(net *aig.Network, src string) error {
	return p.Parse(net, strings.NewReader(src))
}

func (p *Parser) report(sev Severity, line int, format string, args ...any) {
	p.sink.Report(Diagnostic{Severity: sev, Line: line, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) parseLine(net *aig.Network, binds bindings, lineNo int, raw string) error {
	stmt := stripComment(raw)
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		p.report(SeverityIgnore, lineNo, "blank or comment-only line")
		return nil
	}

	if !strings.HasSuffix(stmt, ";") {
		p.report(SeverityFatal, lineNo, "statement missing trailing ';': %q", raw)
		return fmt.Errorf("netlist: line %d: %w", lineNo, ErrUnrecognizedStatement)
	}
	stmt = strings.TrimSuffix(stmt, ";")
	tokens := tokenize(stmt)
	if len(tokens) == 0 {
		p.report(SeverityFatal, lineNo, "empty statement before ';'")
		return fmt.Errorf("netlist: line %d: %w", lineNo, ErrUnrecognizedStatement)
	}

	switch tokens[0] {
	case "input":
		return p.parseInput(net, binds, lineNo, tokens)
	case "output":
		return p.parseOutput(net, binds, lineNo, tokens)
	default:
		return p.parseAssignment(net, binds, lineNo, tokens)
	}
}

func (p *Parser) parseInput(net *aig.Network, binds bindings, lineNo int, tokens []string) error {
	if len(tokens) != 2 || !isIdent(tokens[1]) {
		p.report(SeverityFatal, lineNo, "malformed input declaration: %v", tokens)
		return fmt.Errorf("netlist: line %d: %w", lineNo, ErrUnrecognizedStatement)
	}
	name := tokens[1]
	if _, exists := binds[name]; exists {
		p.report(SeverityWarning, lineNo, "input %q redeclared, keeping original binding", name)
		return nil
	}
	sig := net.CreatePI()
	binds[name] = sig
	p.report(SeverityNote, lineNo, "created PI %q -> %s", name, sig)
	return nil
}

func (p *Parser) parseOutput(net *aig.Network, binds bindings, lineNo int, tokens []string) error {
	if len(tokens) != 2 || !isIdent(tokens[1]) {
		p.report(SeverityFatal, lineNo, "malformed output declaration: %v", tokens)
		return fmt.Errorf("netlist: line %d: %w", lineNo, ErrUnrecognizedStatement)
	}
	name := tokens[1]
	sig, ok := p.resolveOperand(net, binds, name, false)
	if !ok {
		p.report(SeverityError, lineNo, "output %q references an undefined signal, skipping", name)
		return nil
	}
	net.CreatePO(sig)
	p.report(SeverityNote, lineNo, "declared PO %q -> %s", name, sig)
	return nil
}

func (p *Parser) parseAssignment(net *aig.Network, binds bindings, lineNo int, tokens []string) error {
	if len(tokens) < 3 || !isIdent(tokens[0]) || tokens[1] != "=" {
		p.report(SeverityFatal, lineNo, "unrecognized statement: %v", tokens)
		return fmt.Errorf("netlist: line %d: %w", lineNo, ErrUnrecognizedStatement)
	}
	name := tokens[0]
	expr := tokens[2:]

	sig, ok, err := p.evalExpr(net, binds, lineNo, expr)
	if err != nil {
		return err
	}
	if !ok {
		// Undefined reference already reported by evalExpr; skip binding.
		return nil
	}

	if _, exists := binds[name]; exists {
		p.report(SeverityRemark, lineNo, "%q reassigned", name)
	}
	binds[name] = sig
	p.report(SeverityNote, lineNo, "bound %q -> %s", name, sig)
	return nil
}

// evalExpr evaluates one of the three supported right-hand-side shapes:
// a (possibly negated) alias, or a binary AND/OR of two (possibly
// negated) operands. It returns ok=false (with no error) when an operand
// is undefined, so the caller can skip just this statement and keep
// parsing.
func (p *Parser) evalExpr(net *aig.Network, binds bindings, lineNo int, expr []string) (aig.Signal, bool, error) {
	lhs, rest, malformed := takeOperand(expr)
	if malformed {
		p.report(SeverityFatal, lineNo, "malformed expression: %v", expr)
		return 0, false, fmt.Errorf("netlist: line %d: %w", lineNo, ErrMalformedExpression)
	}

	lhsSig, ok := p.resolveOperand(net, binds, lhs.name, lhs.negate)
	if !ok {
		p.report(SeverityError, lineNo, "undefined reference %q, skipping statement", lhs.name)
		return 0, false, nil
	}

	if len(rest) == 0 {
		return lhsSig, true, nil
	}

	op := rest[0]
	if op != "&" && op != "|" {
		p.report(SeverityFatal, lineNo, "malformed expression: expected '&' or '|', got %v", rest)
		return 0, false, fmt.Errorf("netlist: line %d: %w", lineNo, ErrMalformedExpression)
	}

	rhs, trailing, malformed := takeOperand(rest[1:])
	if malformed || len(trailing) != 0 {
		p.report(SeverityFatal, lineNo, "malformed expression: %v", expr)
		return 0, false, fmt.Errorf("netlist: line %d: %w", lineNo, ErrMalformedExpression)
	}

	rhsSig, ok := p.resolveOperand(net, binds, rhs.name, rhs.negate)
	if !ok {
		p.report(SeverityError, lineNo, "undefined reference %q, skipping statement", rhs.name)
		return 0, false, nil
	}

	if op == "&" {
		return net.CreateAND(lhsSig, rhsSig), true, nil
	}
	// a | b == ~(~a & ~b), a De Morgan rewrite over the AND-only core.
	return net.CreateAND(lhsSig.Negated(), rhsSig.Negated()).Negated(), true, nil
}

// resolveOperand looks up name, applying literal constants "0"/"1" and
// the operand's own negation before the statement-level negate (so
// `~0` still denotes constant-1).
func (p *Parser) resolveOperand(net *aig.Network, binds bindings, name string, negate bool) (aig.Signal, bool) {
	var sig aig.Signal
	switch name {
	case "0":
		sig = net.GetConstant(false)
	case "1":
		sig = net.GetConstant(true)
	default:
		s, ok := binds[name]
		if !ok {
			return 0, false
		}
		sig = s
	}
	return sig.Xor(negate), true
}

// Package diag provides the append-only diagnostic sink used by the
// resolver and flow checker. It deliberately has no notion of severity
// beyond the warning flag: presentation is the caller's job.
package diag

import (
	"fmt"

	"ylc/internal/token"
)

// Kind differentiates the semantic error categories raised by Sema.
// The zero value, Redeclaration, is never produced implicitly - every
// diagnostic is constructed with an explicit kind.
type Kind int

const (
	Redeclaration Kind = iota
	UnresolvedSymbol
	FunctionAsValue
	TypeMismatch
	VoidInExpression
	ArgMismatch
	InvalidType
	ImmutableMutation
	UninitializedUse
	NonReturning
	NonReturningSomePaths
	MainShape

	// UnreachableStatement is the sole warning kind.
	UnreachableStatement
)

var kindNames = [...]string{
	Redeclaration:         "redeclaration",
	UnresolvedSymbol:      "unresolved-symbol",
	FunctionAsValue:       "function-as-value",
	TypeMismatch:          "type-mismatch",
	VoidInExpression:      "void-in-expression",
	ArgMismatch:           "arg-mismatch",
	InvalidType:           "invalid-type",
	ImmutableMutation:     "immutable-mutation",
	UninitializedUse:      "uninitialized-use",
	NonReturning:          "non-returning",
	NonReturningSomePaths: "non-returning-some-paths",
	MainShape:             "main-shape",
	UnreachableStatement:  "unreachable-statement",
}

// String returns a print friendly name for the diagnostic kind.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Diagnostic is a single reported record: a location, a message and
// whether it is merely a warning.
type Diagnostic struct {
	Loc       token.Location
	Kind      Kind
	Msg       string
	IsWarning bool
}

// String renders the diagnostic as "file:line:col: message".
func (d Diagnostic) String() string {
	if d.IsWarning {
		return fmt.Sprintf("%s: warning: %s", d.Loc, d.Msg)
	}
	return fmt.Sprintf("%s: %s", d.Loc, d.Msg)
}

// Sink is an append-only log of diagnostics. The zero value is ready
// to use.
type Sink struct {
	entries []Diagnostic
}

// Report appends a non-warning diagnostic and returns false, so callers
// can write:
//
//	return nil, s.Report(loc, diag.TypeMismatch, "...")
func (s *Sink) Report(loc token.Location, kind Kind, format string, args ...interface{}) bool {
	s.entries = append(s.entries, Diagnostic{
		Loc:  loc,
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	})
	return false
}

// Warn appends a warning diagnostic. Warnings never affect the bool
// result callers use to short-circuit resolution.
func (s *Sink) Warn(loc token.Location, kind Kind, format string, args ...interface{}) {
	s.entries = append(s.entries, Diagnostic{
		Loc:       loc,
		Kind:      kind,
		Msg:       fmt.Sprintf(format, args...),
		IsWarning: true,
	})
}

// Entries returns every diagnostic reported so far, in report order.
func (s *Sink) Entries() []Diagnostic {
	return s.entries
}

// HasErrors reports whether any non-warning diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, e := range s.entries {
		if !e.IsWarning {
			return true
		}
	}
	return false
}

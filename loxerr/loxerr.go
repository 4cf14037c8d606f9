/*
File    : golox/loxerr/loxerr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loxerr implements a unified error taxonomy: syntax errors
// (from the parser), resolution errors (from the resolver), and runtime
// errors (from the evaluator). Every error carries a Kind and, when it
// can be pinned to source text, a cursor.Loc.
//
// Errors are typed values that still satisfy the standard error interface,
// so callers that only want a message can keep treating them as plain
// errors while cmd/golox can switch on Phase to pick an exit code.
package loxerr

import (
	"fmt"

	"github.com/akashmaji946/golox/cursor"
)

// Phase identifies which pipeline stage raised an error.
type Phase int

const (
	Syntax Phase = iota
	Resolve
	Runtime
)

func (p Phase) String() string {
	switch p {
	case Syntax:
		return "syntax"
	case Resolve:
		return "resolve"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Kind names one specific error condition, shared across all three phases
// so a single switch can render any of them.
type Kind string

const (
	// Syntax error kinds.
	KindExpected                 Kind = "expected"
	KindUnexpectedToken          Kind = "unexpected-token"
	KindUnmatchedDelimiter       Kind = "unmatched-delimiter"
	KindInvalidAssignmentTarget  Kind = "invalid-assignment-target"
	KindTooManyParams            Kind = "too-many-params"
	KindTooManyArgs              Kind = "too-many-args"
	KindUnexpectedEOF            Kind = "unexpected-eof"

	// Resolution error kinds.
	KindDuplicateInScope          Kind = "duplicate-in-scope"
	KindSelfReferentialInitializer Kind = "self-referential-initializer"
	KindReturnOutsideFunction      Kind = "return-outside-function"

	// Runtime error kinds.
	KindUndefinedVariable Kind = "undefined-variable"
	KindTypeError         Kind = "type-error"
	KindNotCallable       Kind = "not-callable"
	KindArityMismatch     Kind = "arity-mismatch"
)

// Error is the concrete type satisfied by every error this interpreter
// raises after lexing succeeds.
type Error struct {
	Phase   Phase
	Kind    Kind
	Message string
	Loc     cursor.Loc
	Located bool

	// HasHint and Hint carry a second location for KindUnmatchedDelimiter:
	// Loc is the unclosed opening delimiter, Hint is where the parser gave
	// up looking for its close.
	HasHint bool
	Hint    cursor.Loc
}

// Error implements the standard error interface. cmd/golox and the REPL
// render this same text (optionally colorized); it is also what testify's
// assert.ErrorContains matches against.
func (e *Error) Error() string {
	if !e.Located {
		return fmt.Sprintf("%s error: %s", e.Phase, e.Message)
	}
	if e.HasHint {
		return fmt.Sprintf("%s error at %d:%d: %s (still unclosed at %d:%d)",
			e.Phase, e.Loc.Row, e.Loc.Col, e.Message, e.Hint.Row, e.Hint.Col)
	}
	return fmt.Sprintf("%s error at %d:%d: %s", e.Phase, e.Loc.Row, e.Loc.Col, e.Message)
}

// New builds a located error.
func New(phase Phase, kind Kind, loc cursor.Loc, format string, args ...any) *Error {
	return &Error{Phase: phase, Kind: kind, Message: fmt.Sprintf(format, args...), Loc: loc, Located: true}
}

// NewUnmatchedDelimiter builds a KindUnmatchedDelimiter error: openLoc is
// the unclosed opening delimiter's location, hintLoc is where the parser
// was looking when it gave up finding the matching close.
func NewUnmatchedDelimiter(phase Phase, openLoc, hintLoc cursor.Loc, format string, args ...any) *Error {
	return &Error{
		Phase: phase, Kind: KindUnmatchedDelimiter,
		Message: fmt.Sprintf(format, args...),
		Loc:     openLoc, Located: true,
		HasHint: true, Hint: hintLoc,
	}
}

// NewUnlocated builds an error with no source location (reserved for
// conditions that genuinely have none, e.g. an empty token stream).
func NewUnlocated(phase Phase, kind Kind, format string, args ...any) *Error {
	return &Error{Phase: phase, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps a Phase to its process exit code.
func (p Phase) ExitCode() int {
	switch p {
	case Syntax, Resolve:
		return 65
	case Runtime:
		return 70
	default:
		return 1
	}
}

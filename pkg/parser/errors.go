package parser

import (
	"fmt"

	"github.com/yaklabco/stepmark/pkg/ast"
)

// SyntaxError is the only user-facing failure produced by this package.
// It is raised when Expect encounters a token whose kind does not match the
// grammar's expectation, and carries the exact start position of the
// offending token so callers can render caret-style diagnostics.
type SyntaxError struct {
	// Message describes the mismatch in human-readable form.
	Message string

	// Offset is the byte index of the offending token's start.
	Offset int

	// Line is the 1-based line of the offending token's start.
	Line int

	// Column is the 1-based column of the offending token's start.
	Column int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Position returns the start position the error is anchored to.
func (e *SyntaxError) Position() ast.Position {
	return ast.Position{Offset: e.Offset, Line: e.Line, Column: e.Column}
}

// newSyntaxError anchors a syntax error to the start of the given token.
func newSyntaxError(tok Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Offset:  tok.Loc.Start.Offset,
		Line:    tok.Loc.Start.Line,
		Column:  tok.Loc.Start.Column,
	}
}

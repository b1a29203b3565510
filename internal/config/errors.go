package config

import (
	"fmt"
	"strings"
)

// ParseError reports input that is not a well-formed configuration document:
// a syntax error in the source file, a wrong shape, or an unknown key.
type ParseError struct {
	// Source is the file the document was read from, if known.
	Source string
	// Line and Column locate the problem in Source. Zero means unknown.
	Line   int
	Column int
	// Field is the dotted path of the offending field, if known.
	Field string
	Msg   string
	Err   error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse")
	if loc := e.location(); loc != "" {
		b.WriteString(" ")
		b.WriteString(loc)
	}
	b.WriteString(": ")
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		fmt.Fprintf(&b, "%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		b.WriteString(e.Msg)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString("malformed configuration")
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) location() string {
	switch {
	case e.Source == "" && e.Line == 0:
		return ""
	case e.Line == 0:
		return e.Source
	case e.Column == 0:
		return fmt.Sprintf("%s:%d", e.Source, e.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", e.Source, e.Line, e.Column)
	}
}

// ValidationError reports a well-formed configuration that violates an
// invariant. Resolution stops at the first one.
type ValidationError struct {
	// Field is the dotted path of the offending field, e.g. "compiler.version".
	Field string
	// Value is the offending value.
	Value any
	// Constraint describes what was expected.
	Constraint string
	// Conflict names the other field of a colliding pair, if any.
	Conflict string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Conflict != "" {
		return fmt.Sprintf("invalid %s %q: collides with %s: %s", e.Field, fmt.Sprint(e.Value), e.Conflict, e.Constraint)
	}
	return fmt.Sprintf("invalid %s %#v: %s", e.Field, e.Value, e.Constraint)
}

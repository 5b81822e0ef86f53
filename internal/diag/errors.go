// Package diag defines the errors shared by the lexer and the parser.
package diag

import (
	"fmt"

	"github.com/kolkov/shunt/internal/token"
)

// Kind classifies an Error. The set is closed.
type Kind uint8

const (
	// Lex: a character matched neither the operator set, the number
	// pattern nor the identifier pattern; also every repeat from a
	// poisoned lexer.
	Lex Kind = iota + 1
	// Parse: a structural grammar violation.
	Parse
	// Float: a numeric literal matched the pattern but did not convert
	// to a float64.
	Float
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex"
	case Parse:
		return "parse"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is a lexical or syntax error with its source position.
type Error struct {
	Kind    Kind      // Failure class
	Pos     token.Pos // Position where the error occurred
	Message string    // Human-readable error message
	Want    string    // Construct that was expected (Parse only)
	Got     string    // Token that was found (Parse only)
	Err     error     // Underlying cause, if any
}

// Error returns the message prefixed with the kind.
func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause: the conversion failure for Float
// errors, the original failure for repeats from a poisoned lexer.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates an error of the given kind at pos with a formatted message.
func Errorf(kind Kind, pos token.Pos, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// Expected creates a Parse error for an unexpected token.
func Expected(pos token.Pos, want, got string) *Error {
	return &Error{
		Kind:    Parse,
		Pos:     pos,
		Message: fmt.Sprintf("expected %s, got %s at position %s", want, got, pos),
		Want:    want,
		Got:     got,
	}
}

// Wrap creates an error of the given kind whose cause is err.
func Wrap(kind Kind, pos token.Pos, err error, format string, args ...any) *Error {
	e := Errorf(kind, pos, format, args...)
	e.Err = err
	return e
}

package shunt

import (
	"errors"
	"fmt"

	"github.com/kolkov/shunt/internal/diag"
)

// ErrorKind classifies a ParseError.
type ErrorKind = diag.Kind

const (
	// KindLex reports a character that cannot start any token, and every
	// later token request on the same lexer.
	KindLex = diag.Lex
	// KindParse reports a grammar violation: a missing operand, a missing
	// ')', trailing input, or nesting beyond Config.MaxDepth.
	KindParse = diag.Parse
	// KindFloat reports a numeric literal that does not fit a float64.
	KindFloat = diag.Float
)

// ParseError represents an error in expression source text.
type ParseError struct {
	Kind    ErrorKind // Failure class
	Pos     int       // 0-based character offset
	Message string    // Error description
	Want    string    // Expected construct (KindParse only)
	Got     string    // Token found instead (KindParse only)
	Err     error     // Underlying cause, if any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, such as a *strconv.NumError.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}

// convertError converts internal errors to the public type.
func convertError(err error) error {
	var de *diag.Error
	if !errors.As(err, &de) {
		return err
	}
	return &ParseError{
		Kind:    de.Kind,
		Pos:     int(de.Pos),
		Message: de.Message,
		Want:    de.Want,
		Got:     de.Got,
		Err:     de.Err,
	}
}

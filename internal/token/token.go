// Package token defines lexical tokens for infix expressions.
package token

// Token represents a lexical token type.
type Token uint8

const (
	ILLEGAL Token = iota // <illegal>
	EOF                  // end of input
	NUMBER               // number
	IDENT                // identifier
	OP                   // operator
)

var names = [...]string{
	ILLEGAL: "illegal",
	EOF:     "end of input",
	NUMBER:  "number",
	IDENT:   "identifier",
	OP:      "operator",
}

// String returns a human-readable name of the token type.
func (t Token) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return "illegal"
}

// Operators is the fixed set of single-character operator and punctuation tokens.
// Every character in it is scanned as an OP token, before number matching.
const Operators = "+-*/^!=()"

// IsOperator returns true if ch belongs to the single-character operator set.
func IsOperator(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/', '^', '!', '=', '(', ')':
		return true
	default:
		return false
	}
}

// Package ops holds the read-only operator table used by the parser.
package ops

import "fmt"

// Arity is the arity class of an operator.
type Arity uint8

const (
	Binary Arity = iota
	Prefix
	Postfix
	Sentinel
)

func (a Arity) String() string {
	switch a {
	case Binary:
		return "binary"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	case Sentinel:
		return "sentinel"
	default:
		return fmt.Sprintf("arity(%d)", uint8(a))
	}
}

// Assoc is the associativity of an operator.
type Assoc uint8

const (
	Left Assoc = iota
	Right
)

// Operator describes one operator. Descriptors are immutable values.
type Operator struct {
	Char  rune
	Arity Arity
	Prec  int
	Assoc Assoc
}

// SentinelOp marks the bottom of the operator stack and every open
// parenthesis scope. It has the lowest precedence and never reduces.
var SentinelOp = Operator{Arity: Sentinel}

type key struct {
	ch    rune
	arity Arity
}

var table = map[key]Operator{
	{'+', Binary}:  {Char: '+', Arity: Binary, Prec: 1, Assoc: Left},
	{'-', Binary}:  {Char: '-', Arity: Binary, Prec: 1, Assoc: Left},
	{'*', Binary}:  {Char: '*', Arity: Binary, Prec: 2, Assoc: Left},
	{'/', Binary}:  {Char: '/', Arity: Binary, Prec: 2, Assoc: Left},
	{'-', Prefix}:  {Char: '-', Arity: Prefix, Prec: 3, Assoc: Left},
	{'!', Postfix}: {Char: '!', Arity: Postfix, Prec: 4, Assoc: Left},
	{'^', Binary}:  {Char: '^', Arity: Binary, Prec: 5, Assoc: Right},
}

// Lookup returns the operator for ch in the given arity class.
// The sentinel is not part of the table.
func Lookup(ch rune, arity Arity) (Operator, bool) {
	op, ok := table[key{ch, arity}]
	return op, ok
}

// IsSentinel returns true if op is the stack sentinel.
func (op Operator) IsSentinel() bool {
	return op.Arity == Sentinel
}

// Binds reports whether op, sitting on top of the operator stack, must be
// reduced before next is pushed: op binds tighter, or equally tight and
// groups to the left.
func (op Operator) Binds(next Operator) bool {
	if op.Prec != next.Prec {
		return op.Prec > next.Prec
	}
	return op.Assoc == Left && !op.IsSentinel()
}

// String returns the operator character followed by its arity class.
func (op Operator) String() string {
	if op.IsSentinel() {
		return "sentinel"
	}
	return fmt.Sprintf("%c (%s)", op.Char, op.Arity)
}

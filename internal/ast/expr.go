package ast

// NumLit represents a numeric literal.
// Examples: 42, 3.14, 1e10
type NumLit struct {
	BaseExpr
	Value float64 // Parsed numeric value
	Raw   string  // Original source text
}

// Ident represents an identifier.
// Examples: x, pi
type Ident struct {
	BaseExpr
	Name string
}

// CallExpr represents a function call with exactly one argument.
// Example: log(x+1)
type CallExpr struct {
	BaseExpr
	Name string // Function name
	Arg  Expr   // Argument
}

// BinaryExpr represents a binary operation.
// Examples: a + b, 2 ^ x
type BinaryExpr struct {
	BaseExpr
	Op    rune // Operator character
	Left  Expr
	Right Expr
}

// PrefixExpr represents a prefix operation.
// Example: -x
type PrefixExpr struct {
	BaseExpr
	Op   rune
	Expr Expr
}

// PostfixExpr represents a postfix operation.
// Example: 5!
type PostfixExpr struct {
	BaseExpr
	Op   rune
	Expr Expr
}

// GroupExpr represents a parenthesized expression.
// Used to preserve explicit grouping in the source.
// Example: (a + b)
type GroupExpr struct {
	BaseExpr
	Expr Expr // Inner expression
}

func (n *NumLit) String() string      { return FormatInfix(n) }
func (n *Ident) String() string       { return FormatInfix(n) }
func (n *CallExpr) String() string    { return FormatInfix(n) }
func (n *BinaryExpr) String() string  { return FormatInfix(n) }
func (n *PrefixExpr) String() string  { return FormatInfix(n) }
func (n *PostfixExpr) String() string { return FormatInfix(n) }
func (n *GroupExpr) String() string   { return FormatInfix(n) }

// Ensure all expression types implement Expr interface.
var (
	_ Expr = (*NumLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*PrefixExpr)(nil)
	_ Expr = (*PostfixExpr)(nil)
	_ Expr = (*GroupExpr)(nil)
)

package shunt

import (
	"github.com/kolkov/shunt/internal/ast"
	"github.com/kolkov/shunt/internal/lexer"
	"github.com/kolkov/shunt/internal/token"
)

// Syntax tree types. Type switches on Expr see exactly these seven
// node types.
type (
	Expr        = ast.Expr
	NumLit      = ast.NumLit
	Ident       = ast.Ident
	CallExpr    = ast.CallExpr
	BinaryExpr  = ast.BinaryExpr
	PrefixExpr  = ast.PrefixExpr
	PostfixExpr = ast.PostfixExpr
	GroupExpr   = ast.GroupExpr
)

// Visitor is the generic visitor over Expr nodes; see Accept.
type Visitor[T any] = ast.Visitor[T]

// Accept dispatches expr to the matching method of v.
func Accept[T any](expr Expr, v Visitor[T]) T {
	return ast.Accept(expr, v)
}

// Walk traverses expr depth-first, calling fn for every node; returning
// false from fn skips that node's children.
func Walk(expr Expr, fn func(Expr) bool) {
	ast.Walk(expr, func(n ast.Node) bool {
		return fn(n.(Expr))
	})
}

// Token is a scanned token; see Tokenize.
type Token = lexer.Token

// Pos is a 0-based character offset into the source text.
type Pos = token.Pos

// TokenType is the type of a Token.
type TokenType = token.Token

// Token types.
const (
	EOF    = token.EOF
	NUMBER = token.NUMBER
	IDENT  = token.IDENT
	OP     = token.OP
)

// Package ast defines the abstract syntax tree for infix expressions.
//
// Node hierarchy:
//
//	Node (interface)
//	└── Expr (interface)
//	    ├── NumLit, Ident - leaves
//	    ├── BinaryExpr, PrefixExpr, PostfixExpr - operations
//	    ├── CallExpr - single-argument function call
//	    └── GroupExpr - explicit parentheses
//
// Every node records the position of its defining token: the operator
// for operations, the name for identifiers and calls, the opening
// parenthesis for groups. A tree owns all of its subtrees.
package ast

import "github.com/kolkov/shunt/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the token that defines this node.
	Pos() token.Pos

	// String returns the compact infix rendering of the node.
	String() string
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// BaseExpr provides the position field for all expression nodes.
type BaseExpr struct {
	StartPos token.Pos // Position of the defining token
}

func (b *BaseExpr) Pos() token.Pos { return b.StartPos }
func (b *BaseExpr) exprNode()      {}

// MakeBaseExpr creates a BaseExpr at the given position.
func MakeBaseExpr(pos token.Pos) BaseExpr {
	return BaseExpr{StartPos: pos}
}

package ast

import "fmt"

// Visitor defines the generic visitor pattern for AST traversal.
// Type parameter T is the return type of visit methods.
//
// Example usage for an evaluator:
//
//	type Eval struct{ vars map[string]float64 }
//	func (e *Eval) VisitNumLit(n *NumLit) float64 { return n.Value }
//	func (e *Eval) VisitIdent(n *Ident) float64   { return e.vars[n.Name] }
//	// ... other methods
type Visitor[T any] interface {
	VisitNumLit(*NumLit) T
	VisitIdent(*Ident) T
	VisitCallExpr(*CallExpr) T
	VisitBinaryExpr(*BinaryExpr) T
	VisitPrefixExpr(*PrefixExpr) T
	VisitPostfixExpr(*PostfixExpr) T
	VisitGroupExpr(*GroupExpr) T
}

// Accept dispatches e to the matching method of v.
func Accept[T any](e Expr, v Visitor[T]) T {
	switch n := e.(type) {
	case *NumLit:
		return v.VisitNumLit(n)
	case *Ident:
		return v.VisitIdent(n)
	case *CallExpr:
		return v.VisitCallExpr(n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(n)
	case *PrefixExpr:
		return v.VisitPrefixExpr(n)
	case *PostfixExpr:
		return v.VisitPostfixExpr(n)
	case *GroupExpr:
		return v.VisitGroupExpr(n)
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", e))
	}
}

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all identifiers
//
//	count := 0
//	ast.Walk(root, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *NumLit, *Ident:
		// no children
	case *CallExpr:
		Walk(n.Arg, fn)
	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *PrefixExpr:
		Walk(n.Expr, fn)
	case *PostfixExpr:
		Walk(n.Expr, fn)
	case *GroupExpr:
		Walk(n.Expr, fn)
	}
}

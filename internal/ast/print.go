package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatInfix renders e in compact infix form: no spaces, explicit
// parentheses only where the source had them.
// Example: (3*x+4)!-log(y)
func FormatInfix(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	Accept[struct{}](e, &infixWriter{sb: &sb})
	return sb.String()
}

// FormatNumber renders a float64 the way literals appear in output:
// the shortest decimal form without an exponent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type infixWriter struct {
	sb *strings.Builder
}

func (w *infixWriter) VisitNumLit(n *NumLit) struct{} {
	w.sb.WriteString(FormatNumber(n.Value))
	return struct{}{}
}

func (w *infixWriter) VisitIdent(n *Ident) struct{} {
	w.sb.WriteString(n.Name)
	return struct{}{}
}

func (w *infixWriter) VisitCallExpr(n *CallExpr) struct{} {
	w.sb.WriteString(n.Name)
	w.sb.WriteByte('(')
	Accept[struct{}](n.Arg, w)
	w.sb.WriteByte(')')
	return struct{}{}
}

func (w *infixWriter) VisitBinaryExpr(n *BinaryExpr) struct{} {
	Accept[struct{}](n.Left, w)
	w.sb.WriteRune(n.Op)
	Accept[struct{}](n.Right, w)
	return struct{}{}
}

func (w *infixWriter) VisitPrefixExpr(n *PrefixExpr) struct{} {
	w.sb.WriteRune(n.Op)
	Accept[struct{}](n.Expr, w)
	return struct{}{}
}

func (w *infixWriter) VisitPostfixExpr(n *PostfixExpr) struct{} {
	Accept[struct{}](n.Expr, w)
	w.sb.WriteRune(n.Op)
	return struct{}{}
}

func (w *infixWriter) VisitGroupExpr(n *GroupExpr) struct{} {
	w.sb.WriteByte('(')
	Accept[struct{}](n.Expr, w)
	w.sb.WriteByte(')')
	return struct{}{}
}

// treeIndent is the indent added per tree level.
const treeIndent = 2

// Printer writes an indented tree view of an expression, one node per
// line, each line prefixed with the node's position:
//
//	  1: +
//	  0:   x
//	  2:   1
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the tree view of e to the writer.
func (p *Printer) Print(e Expr) error {
	p.printExpr(e)
	return p.err
}

// FormatTree returns the tree view of e as a string.
func FormatTree(e Expr) string {
	var sb strings.Builder
	_ = NewPrinter(&sb).Print(e)
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) printExpr(e Expr) {
	if e == nil {
		p.printf("<nil>\n")
		return
	}

	p.printf("%3d:%*s ", int(e.Pos()), p.indent, "")
	switch n := e.(type) {
	case *NumLit:
		p.printf("%s\n", FormatNumber(n.Value))
	case *Ident:
		p.printf("%s\n", n.Name)
	case *CallExpr:
		p.printf("%s()\n", n.Name)
		p.children(n.Arg)
	case *BinaryExpr:
		p.printf("%c\n", n.Op)
		p.children(n.Left, n.Right)
	case *PrefixExpr:
		p.printf("%c (prefix)\n", n.Op)
		p.children(n.Expr)
	case *PostfixExpr:
		p.printf("%c (postfix)\n", n.Op)
		p.children(n.Expr)
	case *GroupExpr:
		p.printf("()\n")
		p.children(n.Expr)
	default:
		p.printf("<%T>\n", e)
	}
}

func (p *Printer) children(es ...Expr) {
	p.indent += treeIndent
	for _, e := range es {
		p.printExpr(e)
	}
	p.indent -= treeIndent
}

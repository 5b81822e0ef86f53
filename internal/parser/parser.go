// Package parser builds expression trees with the shunting-yard algorithm.
//
// Grammar:
//
//	E --> P { BinOp P | PostfixOp }
//	P --> "(" E ")" | PrefixOp P | Ident "(" E ")" | Ident | Number
//
// The parser keeps two stacks: operators (with a sentinel at the bottom
// and one per open parenthesis) and finished operand subtrees. Operators
// are reduced onto the operand stack in precedence order.
package parser

import (
	"fmt"
	"strings"

	"github.com/kolkov/shunt/internal/ast"
	"github.com/kolkov/shunt/internal/diag"
	"github.com/kolkov/shunt/internal/lexer"
	"github.com/kolkov/shunt/internal/ops"
	"github.com/kolkov/shunt/internal/token"
)

// DefaultMaxDepth is the nesting limit used by Parse.
const DefaultMaxDepth = 1000

// opEntry is an operator on the stack with the position of its token.
type opEntry struct {
	op  ops.Operator
	pos token.Pos
}

// Parser is a shunting-yard parser for a single expression.
type Parser struct {
	lexer *lexer.Lexer // Lexer instance
	tok   lexer.Token  // Current token (one-token lookahead)

	operators []opEntry  // Bottom element is always a sentinel
	operands  []ast.Expr // Complete, already reduced subtrees

	depth    int // Open nesting levels
	maxDepth int // Nesting limit, 0 for none
}

// Parse parses an expression with the default nesting limit.
func Parse(src string) (ast.Expr, error) {
	return ParseDepth(src, DefaultMaxDepth)
}

// ParseDepth parses an expression, failing with a Parse error when
// more than maxDepth parenthesis scopes, call scopes and prefix operators
// are open at once.
// A maxDepth of 0 or less disables the limit.
//
// The first lexical or syntax error aborts the parse; there is no
// partial result.
func ParseDepth(src string, maxDepth int) (ast.Expr, error) {
	p := &Parser{
		lexer:     lexer.New(src),
		operators: []opEntry{{op: ops.SentinelOp, pos: token.NoPos}},
		maxDepth:  maxDepth,
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p.parse()
}

func (p *Parser) parse() (ast.Expr, error) {
	if err := p.parseExpr(); err != nil {
		return nil, err
	}
	if p.tok.Type != token.EOF {
		return nil, p.expected("end of input")
	}
	if len(p.operands) != 1 || len(p.operators) != 1 {
		panic(fmt.Sprintf("parser: %d operands and %d operators left after parse",
			len(p.operands), len(p.operators)))
	}
	return p.operands[0], nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token. Lexer errors are returned untouched.
func (p *Parser) next() error {
	tok, err := p.lexer.Scan()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expected creates a Parse error for the current token. At end of input
// inside a parenthesis scope, the message names the unclosed '('.
func (p *Parser) expected(want string) *diag.Error {
	err := diag.Expected(p.tok.Pos, want, p.tok.String())
	if p.tok.Type == token.EOF && want != "')'" {
		if open, ok := p.openParen(); ok {
			err.Message += fmt.Sprintf(" (missing ')' for '(' at position %s)", open)
		}
	}
	return err
}

// openParen returns the position of the innermost open parenthesis.
func (p *Parser) openParen() (token.Pos, bool) {
	for i := len(p.operators) - 1; i >= 0; i-- {
		if e := p.operators[i]; e.op.IsSentinel() && e.pos.IsValid() {
			return e.pos, true
		}
	}
	return token.NoPos, false
}

// -----------------------------------------------------------------------------
// Grammar
// -----------------------------------------------------------------------------

// parseExpr parses E and leaves its tree on top of the operand stack.
func (p *Parser) parseExpr() error {
	if err := p.parsePrimary(); err != nil {
		return err
	}
	for p.tok.Type == token.OP {
		if op, ok := ops.Lookup(p.tok.Op, ops.Binary); ok {
			p.pushOperator(op, p.tok.Pos)
			if err := p.next(); err != nil {
				return err
			}
			if err := p.parsePrimary(); err != nil {
				return err
			}
		} else if op, ok := ops.Lookup(p.tok.Op, ops.Postfix); ok {
			// The operand is complete once higher operators are reduced.
			p.pushOperator(op, p.tok.Pos)
			p.popOperator()
			if err := p.next(); err != nil {
				return err
			}
		} else {
			break
		}
	}
	for !p.top().op.IsSentinel() {
		p.popOperator()
	}
	return nil
}

// enter opens a nesting level at the current token: a parenthesis or call
// scope, or a prefix operator.
func (p *Parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return diag.Errorf(diag.Parse, p.tok.Pos,
			"expression nested too deeply at position %s (limit %d)", p.tok.Pos, p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// parsePrimary parses P.
func (p *Parser) parsePrimary() error {
	tok := p.tok
	switch {
	case tok.Type == token.NUMBER:
		p.pushOperand(&ast.NumLit{
			BaseExpr: ast.MakeBaseExpr(tok.Pos),
			Value:    tok.Num,
			Raw:      strings.Clone(tok.Value),
		})
		return p.next()

	case tok.Type == token.IDENT:
		if err := p.next(); err != nil {
			return err
		}
		name := strings.Clone(tok.Value)
		if p.tok.Is('(') {
			arg, err := p.parseParens()
			if err != nil {
				return err
			}
			p.pushOperand(&ast.CallExpr{BaseExpr: ast.MakeBaseExpr(tok.Pos), Name: name, Arg: arg})
			return nil
		}
		p.pushOperand(&ast.Ident{BaseExpr: ast.MakeBaseExpr(tok.Pos), Name: name})
		return nil

	case tok.Is('('):
		inner, err := p.parseParens()
		if err != nil {
			return err
		}
		p.pushOperand(&ast.GroupExpr{BaseExpr: ast.MakeBaseExpr(tok.Pos), Expr: inner})
		return nil

	case tok.Type == token.OP:
		op, ok := ops.Lookup(tok.Op, ops.Prefix)
		if !ok {
			break
		}
		if err := p.enter(); err != nil {
			return err
		}
		defer p.leave()
		p.pushOperator(op, tok.Pos)
		if err := p.next(); err != nil {
			return err
		}
		return p.parsePrimary()
	}
	return p.expected("operand")
}

// parseParens parses "(" E ")" in a fresh sentinel scope and returns the
// tree of E. The current token must be '('.
func (p *Parser) parseParens() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	open := p.tok.Pos
	if err := p.next(); err != nil {
		return nil, err
	}
	p.operators = append(p.operators, opEntry{op: ops.SentinelOp, pos: open})
	base := len(p.operands)

	if err := p.parseExpr(); err != nil {
		return nil, err
	}
	if !p.tok.Is(')') {
		return nil, p.expected("')'")
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	if e := p.popEntry(); !e.op.IsSentinel() || e.pos != open {
		panic(fmt.Sprintf("parser: scope of '(' at %s closed by %v at %s", open, e.op, e.pos))
	}
	if len(p.operands) != base+1 {
		panic(fmt.Sprintf("parser: scope of '(' at %s left %d operands", open, len(p.operands)-base))
	}
	return p.popOperand(), nil
}

// -----------------------------------------------------------------------------
// Stacks
// -----------------------------------------------------------------------------

func (p *Parser) top() opEntry {
	return p.operators[len(p.operators)-1]
}

// pushOperator reduces every stacked operator that binds tighter than op,
// then pushes op. A prefix operator reduces nothing: the operator below it
// is still waiting for the operand the prefix operator will produce.
func (p *Parser) pushOperator(op ops.Operator, pos token.Pos) {
	if op.Arity != ops.Prefix {
		for p.top().op.Binds(op) {
			p.popOperator()
		}
	}
	p.operators = append(p.operators, opEntry{op: op, pos: pos})
}

// popOperator pops one operator and replaces its operands with the
// resulting node.
func (p *Parser) popOperator() {
	e := p.popEntry()
	base := ast.MakeBaseExpr(e.pos)
	switch e.op.Arity {
	case ops.Binary:
		right := p.popOperand()
		left := p.popOperand()
		p.pushOperand(&ast.BinaryExpr{BaseExpr: base, Op: e.op.Char, Left: left, Right: right})
	case ops.Prefix:
		p.pushOperand(&ast.PrefixExpr{BaseExpr: base, Op: e.op.Char, Expr: p.popOperand()})
	case ops.Postfix:
		p.pushOperand(&ast.PostfixExpr{BaseExpr: base, Op: e.op.Char, Expr: p.popOperand()})
	default:
		panic(fmt.Sprintf("parser: reducing %v from position %s", e.op, e.pos))
	}
}

func (p *Parser) popEntry() opEntry {
	n := len(p.operators)
	if n == 0 {
		panic("parser: operator stack underflow")
	}
	e := p.operators[n-1]
	p.operators = p.operators[:n-1]
	return e
}

func (p *Parser) pushOperand(e ast.Expr) {
	p.operands = append(p.operands, e)
}

func (p *Parser) popOperand() ast.Expr {
	n := len(p.operands)
	if n == 0 {
		panic("parser: operand stack underflow")
	}
	e := p.operands[n-1]
	p.operands[n-1] = nil
	p.operands = p.operands[:n-1]
	return e
}

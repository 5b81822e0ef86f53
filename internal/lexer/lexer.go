// Package lexer provides tokenization of infix arithmetic expressions.
package lexer

import (
	"fmt"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/coregex"

	"github.com/kolkov/shunt/internal/diag"
	"github.com/kolkov/shunt/internal/token"
)

// The sign branch of mantissaPattern never fires: '+' and '-' are claimed
// by the operator set first, and signs reach the parser as prefix operators.
//
// The exponent is matched separately: coregex drops a trailing optional
// group starting with a lowercase 'e' when it is combined into one pattern.
var (
	mantissaPattern = mustCompile(`^[+-]?[0-9]+(?:\.[0-9]*)?`)
	exponentPattern = mustCompile(`^[eE][0-9]+`)
	identPattern    = mustCompile(`^[a-zA-Z]+`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("lexer: compile %q: %v", pattern, err))
	}
	return re
}

// state is the lexer's failure state. It moves from ready to poisoned
// exactly once, on the first failed scan.
type state uint8

const (
	ready state = iota
	poisoned
)

// Lexer tokenizes an expression one token at a time.
// A Lexer is not safe for concurrent use.
type Lexer struct {
	src    string    // Source text
	offset int       // Byte offset of the next unread character
	pos    token.Pos // Characters consumed so far

	state state
	cause *diag.Error // First failure, set when poisoned
}

// New creates a new Lexer for the given source text.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Token represents a scanned token with its position and value.
type Token struct {
	Type  token.Token
	Pos   token.Pos
	Value string  // Source text of the token
	Num   float64 // Value of a NUMBER
	Op    rune    // Character of an OP
}

// String describes the token for error messages.
func (t Token) String() string {
	switch t.Type {
	case token.NUMBER:
		return "number " + t.Value
	case token.IDENT:
		return fmt.Sprintf("identifier %q", t.Value)
	case token.OP:
		return fmt.Sprintf("'%c'", t.Op)
	default:
		return t.Type.String()
	}
}

// Is returns true if the token is the operator ch.
func (t Token) Is(ch rune) bool {
	return t.Type == token.OP && t.Op == ch
}

// Pos returns the number of characters consumed so far.
func (l *Lexer) Pos() token.Pos {
	return l.pos
}

// Scan scans and returns the next token.
//
// At end of input it returns an EOF token and keeps doing so on further
// calls. After the first error every call fails again without rescanning,
// with a Lex error that wraps the original failure.
func (l *Lexer) Scan() (Token, error) {
	if l.state == poisoned {
		return Token{Type: token.ILLEGAL, Pos: l.cause.Pos}, &diag.Error{
			Kind:    diag.Lex,
			Pos:     l.cause.Pos,
			Message: "errored previously: " + l.cause.Message,
			Err:     l.cause,
		}
	}
	tok, err := l.scan()
	if err != nil {
		l.state = poisoned
		l.cause = err
		return tok, err
	}
	return tok, nil
}

// All returns an iterator over the remaining tokens. It stops before the
// first EOF token, or after yielding the first error. A poisoned lexer
// yields nothing.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		if l.state == poisoned {
			return
		}
		for {
			tok, err := l.Scan()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Type == token.EOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

func (l *Lexer) scan() (Token, *diag.Error) {
	l.skipWhitespace()

	pos := l.pos
	if l.offset >= len(l.src) {
		return Token{Type: token.EOF, Pos: pos}, nil
	}

	ch, size := utf8.DecodeRuneInString(l.src[l.offset:])
	if token.IsOperator(ch) {
		l.advance(size, 1)
		return Token{Type: token.OP, Pos: pos, Value: string(ch), Op: ch}, nil
	}

	rest := l.src[l.offset:]
	if n := numberLen(rest); n > 0 {
		text := rest[:n]
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{Type: token.ILLEGAL, Pos: pos}, diag.Wrap(diag.Float, pos, err,
				"invalid number %q at position %d: %v", text, pos, err)
		}
		l.advance(n, n)
		return Token{Type: token.NUMBER, Pos: pos, Value: text, Num: v}, nil
	}
	if n := matchLen(identPattern, rest); n > 0 {
		l.advance(n, n)
		return Token{Type: token.IDENT, Pos: pos, Value: rest[:n]}, nil
	}

	return Token{Type: token.ILLEGAL, Pos: pos}, diag.Errorf(diag.Lex, pos,
		"unexpected %q at position %d", ch, pos)
}

// numberLen returns the length of the number literal at the start of s,
// or 0: a mantissa followed by an optional exponent.
func numberLen(s string) int {
	n := matchLen(mantissaPattern, s)
	if n == 0 {
		return 0
	}
	return n + matchLen(exponentPattern, s[n:])
}

// matchLen returns the length of the match of re anchored at the start of
// s, or 0. Both patterns match ASCII only, so bytes equal characters.
func matchLen(re *coregex.Regexp, s string) int {
	loc := re.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return 0
	}
	return loc[1]
}

func (l *Lexer) skipWhitespace() {
	for l.offset < len(l.src) {
		ch, size := utf8.DecodeRuneInString(l.src[l.offset:])
		if !unicode.IsSpace(ch) {
			return
		}
		l.advance(size, 1)
	}
}

// advance consumes n bytes making up chars characters.
func (l *Lexer) advance(n, chars int) {
	l.offset += n
	l.pos += token.Pos(chars)
}

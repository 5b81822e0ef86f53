package shunt

import (
	"github.com/kolkov/shunt/internal/ast"
	"github.com/kolkov/shunt/internal/lexer"
	"github.com/kolkov/shunt/internal/parser"
)

// Version is the shunt version string.
const Version = "0.1.0"

// Parse parses an expression with the default configuration.
//
// Example:
//
//	expr, err := shunt.Parse("2^3^4")
//	// expr: 2^(3^4), a *BinaryExpr whose Right is a *BinaryExpr
func Parse(text string) (Expr, error) {
	return ParseWithConfig(text, nil)
}

// ParseWithConfig parses an expression using config (nil for defaults).
func ParseWithConfig(text string, config *Config) (Expr, error) {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()

	expr, err := parser.ParseDepth(text, max(cfg.MaxDepth, 0))
	if err != nil {
		return nil, convertError(err)
	}
	return expr, nil
}

// MustParse is like Parse but panics if the expression cannot be parsed.
// It simplifies initialization of global expressions.
//
// Example:
//
//	var area = shunt.MustParse("pi*r^2")
func MustParse(text string) Expr {
	expr, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return expr
}

// Tokenize scans text and returns its tokens, not including the final
// end-of-input token. On a lexical error it returns the tokens scanned
// so far together with the error.
func Tokenize(text string) ([]Token, error) {
	var toks []Token
	for tok, err := range lexer.New(text).All() {
		if err != nil {
			return toks, convertError(err)
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// FormatInfix renders expr in compact infix form, e.g. "(3*x+4)!-log(y)".
func FormatInfix(expr Expr) string {
	return ast.FormatInfix(expr)
}

// FormatTree renders expr as an indented tree, one node per line,
// each prefixed with its position.
func FormatTree(expr Expr) string {
	return ast.FormatTree(expr)
}

package shunt

import "github.com/kolkov/shunt/internal/parser"

// Config holds configuration options for parsing.
type Config struct {
	// MaxDepth limits how many nesting levels may be open at once
	// (default: 1000). Each parenthesis, call argument list and prefix
	// operator opens one level, so MaxDepth 1 accepts "(1)" but not "((1))".
	// Deeper input fails with a KindParse error instead of exhausting the stack.
	// A negative value disables the limit.
	MaxDepth int
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.MaxDepth == 0 {
		c.MaxDepth = parser.DefaultMaxDepth
	}
}

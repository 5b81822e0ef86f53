// Package shunt parses infix arithmetic expressions into syntax trees.
//
// The parser is an operator-precedence (shunting-yard) parser over a small
// expression language:
//   - Numbers (3, 2.5, 1e10) and identifiers made of ASCII letters
//   - Binary operators + - * / ^ with the usual precedence; ^ is right-associative
//   - Prefix minus and postfix factorial (!)
//   - Parentheses and single-argument function calls: log(x+1)
//
// # Quick Start
//
//	expr, err := shunt.Parse("3+4*5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(shunt.FormatTree(expr))
//
// Every node records the position of the token that defines it, counted
// in characters from the start of the input. Trees own their data and do
// not reference the input text.
//
// # Configuration
//
// The [Config] type limits nesting depth for untrusted input:
//
//	expr, err := shunt.ParseWithConfig(text, &shunt.Config{MaxDepth: 64})
//
// # Error Handling
//
// All failures are returned as [*ParseError]. Its Kind tells lexical
// errors, grammar errors and number conversion errors apart. The first
// error aborts parsing; there is no partial tree.
//
// # Thread Safety
//
// Each call parses with its own lexer and stacks, so concurrent calls are
// safe. Returned trees are not modified by the package.
package shunt

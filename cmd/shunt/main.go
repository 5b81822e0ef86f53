// shunt - infix expression parser
//
// Parses arithmetic expressions and prints their syntax trees.
package main

import (
	"os"

	"github.com/kolkov/shunt/cmd/shunt/cmd"
)

// version is set at build time via -ldflags; empty means shunt.Version.
var version string

func main() {
	if err := cmd.Execute(version); err != nil {
		os.Exit(1)
	}
}

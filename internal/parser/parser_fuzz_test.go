package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kolkov/shunt/internal/ast"
	"github.com/kolkov/shunt/internal/diag"
	"github.com/kolkov/shunt/internal/parser"
)

// FuzzParser tests the parser with random inputs to find crashes.
// Accepted inputs must survive a round trip through the infix printer.
func FuzzParser(f *testing.F) {
	seeds := []string{
		"",
		"3+4*5",
		"2^3^4",
		"(3*x+4)",
		"log(x+1)",
		"5!",
		"-5",
		"--5",
		"2^-3!",
		"(3*x+4)!!- 5*2^x!^2+log(zy^2^3)--5",
		"(3+",
		"3 & 4",
		"1e999",
		"((((((1))))))",
		"f(g(h(x)))",
		"x = 1",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		e, err := parser.Parse(src)
		if err != nil {
			var de *diag.Error
			if !errors.As(err, &de) {
				t.Fatalf("Parse(%q) returned %T, want *diag.Error", src, err)
			}
			if e != nil {
				t.Fatalf("Parse(%q) returned a tree with error %v", src, err)
			}
			return
		}
		out := ast.FormatInfix(e)
		again, err := parser.Parse(out)
		if err != nil {
			t.Fatalf("reparse of %q (from %q) failed: %v", out, src, err)
		}
		if diff := cmp.Diff(e, again, shapeOnly); diff != "" {
			t.Fatalf("round trip of %q changed the tree (-first +second):\n%s", src, diff)
		}
	})
}

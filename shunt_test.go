package shunt_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/kolkov/shunt"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    string // infix rendering
		wantErr bool
	}{
		{name: "precedence", src: "3+4*5", want: "3+4*5"},
		{name: "right assoc", src: "2 ^ 3 ^ 4", want: "2^3^4"},
		{name: "group", src: "(3*x+4)", want: "(3*x+4)"},
		{name: "call", src: "log(x+1)", want: "log(x+1)"},
		{name: "postfix", src: "5!", want: "5!"},
		{name: "prefix", src: "-5", want: "-5"},
		{name: "fraction", src: "2.50", want: "2.5"},
		{name: "exponent", src: "1.e5+2e1", want: "100000+20"},
		{name: "empty", src: "", wantErr: true},
		{name: "unclosed", src: "(3+", wantErr: true},
		{name: "bad char", src: "3 & 4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := shunt.Parse(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			}
			if tt.wantErr {
				if expr != nil {
					t.Errorf("Parse(%q) returned tree on error", tt.src)
				}
				return
			}
			if got := shunt.FormatInfix(expr); got != tt.want {
				t.Errorf("FormatInfix = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTreeShape(t *testing.T) {
	expr, err := shunt.Parse("2^3^4")
	if err != nil {
		t.Fatal(err)
	}
	top, ok := expr.(*shunt.BinaryExpr)
	if !ok || top.Op != '^' {
		t.Fatalf("root = %T %v, want ^", expr, expr)
	}
	if _, ok := top.Left.(*shunt.NumLit); !ok {
		t.Errorf("left = %T, want *NumLit", top.Left)
	}
	right, ok := top.Right.(*shunt.BinaryExpr)
	if !ok || right.Op != '^' {
		t.Errorf("right = %T, want ^", top.Right)
	}
	if top.Pos() != 1 || right.Pos() != 3 {
		t.Errorf("positions = %d, %d, want 1, 3", top.Pos(), right.Pos())
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		src  string
		kind shunt.ErrorKind
		pos  int
	}{
		{"(3+", shunt.KindParse, 3},
		{"3 4", shunt.KindParse, 2},
		{"3 & 4", shunt.KindLex, 2},
		{"1e999", shunt.KindFloat, 0},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := shunt.Parse(tt.src)
			var pe *shunt.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", pe.Kind, tt.kind)
			}
			if pe.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", pe.Pos, tt.pos)
			}
			if !shunt.IsKind(err, tt.kind) {
				t.Errorf("IsKind(%v) = false", tt.kind)
			}
			if !strings.HasPrefix(err.Error(), tt.kind.String()+" error: ") {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}

func TestParseErrorMissingParen(t *testing.T) {
	_, err := shunt.Parse("(3+")
	if err == nil || !strings.Contains(err.Error(), "')'") {
		t.Errorf("error = %v, want mention of ')'", err)
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	_, err := shunt.Parse("1e999")
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("errors.Is(%v, strconv.ErrRange) = false", err)
	}
}

func TestConfigMaxDepth(t *testing.T) {
	src := strings.Repeat("(", 20) + "x" + strings.Repeat(")", 20)

	if _, err := shunt.ParseWithConfig(src, &shunt.Config{MaxDepth: 5}); !shunt.IsKind(err, shunt.KindParse) {
		t.Errorf("MaxDepth 5: error = %v, want parse error", err)
	}
	if _, err := shunt.ParseWithConfig(src, nil); err != nil {
		t.Errorf("default config: %v", err)
	}
	if _, err := shunt.ParseWithConfig(src, &shunt.Config{MaxDepth: 20}); err != nil {
		t.Errorf("MaxDepth 20 with 20 levels: %v", err)
	}
	if _, err := shunt.ParseWithConfig("(1)", &shunt.Config{MaxDepth: 1}); err != nil {
		t.Errorf("MaxDepth 1 with one level: %v", err)
	}
	deep := strings.Repeat("-", 5000) + "1"
	if _, err := shunt.Parse(deep); err == nil {
		t.Error("default limit: want error for 5000 prefix operators")
	}
	if _, err := shunt.ParseWithConfig(deep, &shunt.Config{MaxDepth: -1}); err != nil {
		t.Errorf("unlimited: %v", err)
	}
}

func TestConfigNotModified(t *testing.T) {
	cfg := &shunt.Config{}
	if _, err := shunt.ParseWithConfig("1", cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 0 {
		t.Errorf("ParseWithConfig modified config: MaxDepth = %d", cfg.MaxDepth)
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse should panic on invalid expression")
		}
	}()
	shunt.MustParse("(")
}

func TestMustParseValid(t *testing.T) {
	if expr := shunt.MustParse("pi*r^2"); expr == nil {
		t.Error("MustParse returned nil")
	}
}

func TestTokenize(t *testing.T) {
	toks, err := shunt.Tokenize("log(3x!!+4)- 5x zy^2^3")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 17 {
		t.Fatalf("got %d tokens, want 17", len(toks))
	}
	if toks[0].Type != shunt.IDENT || toks[0].Value != "log" {
		t.Errorf("toks[0] = %v", toks[0])
	}
	if toks[12].Type != shunt.IDENT || toks[12].Pos != 16 {
		t.Errorf("toks[12] = %+v, want identifier at 16", toks[12])
	}

	toks, err = shunt.Tokenize("a + #")
	if !shunt.IsKind(err, shunt.KindLex) {
		t.Errorf("error = %v, want lex error", err)
	}
	if len(toks) != 2 {
		t.Errorf("got %d tokens before error, want 2", len(toks))
	}
}

func TestWalk(t *testing.T) {
	expr := shunt.MustParse("f(x)+g(y)*x")
	var names []string
	shunt.Walk(expr, func(e shunt.Expr) bool {
		switch n := e.(type) {
		case *shunt.Ident:
			names = append(names, n.Name)
		case *shunt.CallExpr:
			names = append(names, n.Name+"()")
		}
		return true
	})
	if got := strings.Join(names, " "); got != "f() x g() y x" {
		t.Errorf("Walk order = %q", got)
	}
}

func TestConcurrentParse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				expr, err := shunt.Parse("(3*x+4)!!- 5*2^x!^2+log(zy^2^3)--5")
				if err != nil {
					t.Error(err)
					return
				}
				if got := shunt.FormatInfix(expr); got != "(3*x+4)!!-5*2^x!^2+log(zy^2^3)--5" {
					t.Errorf("FormatInfix = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = shunt.Parse("(3*x+4)!!- 5*2^x!^2+log(zy^2^3)--5")
	}
}

func ExampleParse() {
	expr, err := shunt.Parse("3+4*5")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(shunt.FormatTree(expr))
	// Output:
	//   1: +
	//   0:   3
	//   3:   *
	//   2:     4
	//   4:     5
}

func ExampleParse_error() {
	_, err := shunt.Parse("(3+4")
	fmt.Println(err)
	// Output: parse error: expected ')', got end of input at position 4
}

func ExampleFormatInfix() {
	expr := shunt.MustParse("log ( x + 1 ) ^ 2")
	fmt.Println(shunt.FormatInfix(expr))
	// Output: log(x+1)^2
}

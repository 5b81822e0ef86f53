package diag

import (
	"errors"
	"strconv"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"lex", Errorf(Lex, 2, "unexpected %q at position %d", '&', 2), `lex error: unexpected '&' at position 2`},
		{"expected", Expected(3, "')'", "end of input"), "parse error: expected ')', got end of input at position 3"},
		{"kind", &Error{Kind: Kind(9), Message: "x"}, "kind(9) error: x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpectedFields(t *testing.T) {
	err := Expected(7, "operand", "')'")
	if err.Kind != Parse {
		t.Errorf("Kind = %v, want %v", err.Kind, Parse)
	}
	if err.Want != "operand" || err.Got != "')'" {
		t.Errorf("Want/Got = %q/%q", err.Want, err.Got)
	}
	if err.Pos != 7 {
		t.Errorf("Pos = %d, want 7", err.Pos)
	}
}

func TestWrapUnwrap(t *testing.T) {
	_, cause := strconv.ParseFloat("1e999", 64)
	err := Wrap(Float, 0, cause, "invalid number %q: %v", "1e999", cause)

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("errors.As(*strconv.NumError) failed for %v", err)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("errors.Is(err, strconv.ErrRange) = false")
	}
}

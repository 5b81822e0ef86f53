package token

import "strconv"

// Pos is a source position: the number of characters (not bytes)
// consumed before the token or node began.
type Pos int

// NoPos is used when the position is unknown, e.g. for the
// outermost operator-stack sentinel.
const NoPos Pos = -1

// IsValid returns true if the position is known.
func (p Pos) IsValid() bool {
	return p >= 0
}

// String returns the decimal offset, or "-" for NoPos.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return strconv.Itoa(int(p))
}

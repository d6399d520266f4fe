package dama

import (
	"fmt"
	"math/bits"
)

// Square identifies one of the 64 board cells. Row 0 is White's home rank
// (rank "1"); row 7 is Black's home rank (rank "8"). Column 0 is file A.
type Square uint8

// NoSquare is a sentinel for "no square", used by APIs that may not have
// one to report (e.g. FromNotation on malformed input, or a step off the
// board edge).
const NoSquare Square = 64

const numSquares = 64
const numFiles = 8

// Square constants, row-major: A1 is column 0 of row 0, H8 is column 7 of
// row 7.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a Square from a 0-based row and column. Callers who
// cannot guarantee the range should use FromRowCol instead.
func NewSquare(row, col int) Square {
	return Square(row*numFiles + col)
}

// FromRowCol returns the square at the given 0-based row and column, or
// ErrInvalidSquare if either is outside [0,8).
func FromRowCol(row, col int) (Square, error) {
	if row < 0 || row >= numFiles || col < 0 || col >= numFiles {
		return NoSquare, fmt.Errorf("%w: row/col (%d,%d) out of range", ErrInvalidSquare, row, col)
	}
	return NewSquare(row, col), nil
}

// FromNotation parses a case-insensitive "<file><rank>" string such as
// "d4" or "D4" into a Square.
func FromNotation(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: notation %q must be 2 characters", ErrInvalidSquare, s)
	}
	file := s[0]
	switch {
	case file >= 'a' && file <= 'h':
		file -= 'a'
	case file >= 'A' && file <= 'H':
		file -= 'A'
	default:
		return NoSquare, fmt.Errorf("%w: notation %q has an invalid file", ErrInvalidSquare, s)
	}
	rank := s[1]
	if rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: notation %q has an invalid rank", ErrInvalidSquare, s)
	}
	return NewSquare(int(rank-'1'), int(file)), nil
}

// FromMask returns the square whose mask is bb. bb must have exactly one
// bit set, otherwise ErrInvalidSquare is returned.
func FromMask(bb uint64) (Square, error) {
	if bits.OnesCount64(bb) != 1 {
		return NoSquare, fmt.Errorf("%w: mask 0x%x does not have exactly one bit set", ErrInvalidSquare, bb)
	}
	return Square(bits.TrailingZeros64(bb)), nil
}

// Row returns the 0-based row, where row 0 is White's home rank.
func (sq Square) Row() int {
	return int(sq) / numFiles
}

// Col returns the 0-based column, where column 0 is file A.
func (sq Square) Col() int {
	return int(sq) % numFiles
}

// ToMask returns the single-bit bitboard for this square.
func (sq Square) ToMask() uint64 {
	return uint64(1) << uint(sq)
}

// Notation returns the upper-case algebraic notation for the square, e.g.
// "D4".
func (sq Square) Notation() string {
	return string(rune('A'+sq.Col())) + string(rune('1'+sq.Row()))
}

// String implements the fmt.Stringer interface.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return sq.Notation()
}

// Manhattan returns the Manhattan distance (|delta row| + |delta col|)
// between sq and other.
func (sq Square) Manhattan(other Square) int {
	return absInt(sq.Row()-other.Row()) + absInt(sq.Col()-other.Col())
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package dama

import (
	"fmt"
	"strings"
)

// startWhite and startBlack are the standard Turkish Draughts starting
// masks: White on rows 1-2, Black on rows 5-6 (0-based rows 1,2 and
// 5,6), no kings.
const (
	startWhite uint64 = 0x0000_0000_00FF_FF00
	startBlack uint64 = 0x00FF_FF00_0000_0000
)

// Board is an immutable snapshot of a Turkish Draughts position: the
// white and black occupancy masks, the subset of those that are kings,
// and the side to move. Two Boards compare equal (with ==) iff all four
// fields agree, and Board is usable directly as a map key.
type Board struct {
	white bitboard
	black bitboard
	kings bitboard
	turn  Team
}

// NewBoard returns the standard Turkish Draughts starting position:
// White to move, 16 men per side on rows 2-3 and 6-7, no kings.
func NewBoard() Board {
	b, err := BoardFromBitboards(White, startWhite, startBlack, 0)
	if err != nil {
		panic(fmt.Sprintf("dama: starting position failed invariant check: %v", err))
	}
	return b
}

// BoardFromBitboards builds a Board directly from its raw masks. It fails
// with ErrInvalidConfiguration if white and black overlap, or if kings is
// not a subset of white|black.
func BoardFromBitboards(turn Team, white, black, kings uint64) (Board, error) {
	b := Board{white: bitboard(white), black: bitboard(black), kings: bitboard(kings), turn: turn}
	if err := b.checkInvariants(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// BoardFromSquares builds a Board from square lists. kingSquares must be
// a subset of whiteSquares union blackSquares.
func BoardFromSquares(turn Team, whiteSquares, blackSquares, kingSquares []Square) (Board, error) {
	var white, black, kings bitboard
	for _, sq := range whiteSquares {
		white |= bbForSquare(sq)
	}
	for _, sq := range blackSquares {
		black |= bbForSquare(sq)
	}
	for _, sq := range kingSquares {
		kings |= bbForSquare(sq)
	}
	return BoardFromBitboards(turn, uint64(white), uint64(black), uint64(kings))
}

// checkInvariants enforces the two structural invariants every
// constructor must validate: pieces don't overlap, and every king is
// also a piece. It deliberately does not reject a man sitting on its
// own promotion rank — see DESIGN.md's Open Question decisions for why
// that clause of SPEC_FULL.md §3/§7 is not enforced here.
func (b Board) checkInvariants() error {
	if b.white&b.black != 0 {
		return fmt.Errorf("%w: white and black occupy the same square", ErrInvalidConfiguration)
	}
	if b.kings&^(b.white|b.black) != 0 {
		return fmt.Errorf("%w: a king is not also a piece", ErrInvalidConfiguration)
	}
	return nil
}

// Turn returns the side to move.
func (b Board) Turn() Team { return b.turn }

// WhitePieces returns every square occupied by a white piece.
func (b Board) WhitePieces() []Square { return b.white.squares() }

// BlackPieces returns every square occupied by a black piece.
func (b Board) BlackPieces() []Square { return b.black.squares() }

// Kings returns every square occupied by a king of either color.
func (b Board) Kings() []Square { return b.kings.squares() }

// WhiteBitboard returns the raw white occupancy mask.
func (b Board) WhiteBitboard() uint64 { return uint64(b.white) }

// BlackBitboard returns the raw black occupancy mask.
func (b Board) BlackBitboard() uint64 { return uint64(b.black) }

// KingsBitboard returns the raw king mask.
func (b Board) KingsBitboard() uint64 { return uint64(b.kings) }

// Bitboards returns the white, black, and king masks plus the side to
// move, all at once.
func (b Board) Bitboards() (white, black, kings uint64, turn Team) {
	return uint64(b.white), uint64(b.black), uint64(b.kings), b.turn
}

// ToArray returns [white, black, kings, turn] as a fixed array, handy for
// bulk export to tensor-style consumers.
func (b Board) ToArray() [4]uint64 {
	return [4]uint64{uint64(b.white), uint64(b.black), uint64(b.kings), uint64(b.turn)}
}

func (b Board) friendly() bitboard {
	if b.turn == White {
		return b.white
	}
	return b.black
}

func (b Board) enemy() bitboard {
	if b.turn == White {
		return b.black
	}
	return b.white
}

func (b Board) occupied() bitboard {
	return b.white | b.black
}

func (b Board) isKing(sq Square) bool {
	return b.kings.occupied(sq)
}

// promotionRank returns the row on which a man of the given team
// promotes.
func promotionRank(t Team) int {
	if t == White {
		return rank8
	}
	return rank1
}

// Apply returns the board that results from playing a on b. It returns
// ErrIllegalMove if a is not among b.Actions() — every move must be
// validated against the generator rather than trusted blindly.
func (b Board) Apply(a Action) (Board, error) {
	legal := false
	for _, candidate := range b.Actions() {
		if candidate.Equal(a) {
			legal = true
			break
		}
	}
	if !legal {
		return Board{}, fmt.Errorf("%w: %s", ErrIllegalMove, a.Notation())
	}
	return b.applyUnchecked(a), nil
}

// applyUnchecked performs the same transition as Apply without rescanning
// Actions() for legality. Callers that already hold a just as an element
// of b.Actions() — Perft's recursion, and Apply itself once its own check
// has passed — use this to avoid regenerating the action list a second
// time per node.
func (b Board) applyUnchecked(a Action) Board {
	next := b
	srcMask := bbForSquare(a.Source)
	dstMask := bbForSquare(a.Destination)
	wasKing := b.isKing(a.Source)

	if b.turn == White {
		next.white = (next.white &^ srcMask) | dstMask
		next.black = next.black &^ bitboard(a.Captured)
	} else {
		next.black = (next.black &^ srcMask) | dstMask
		next.white = next.white &^ bitboard(a.Captured)
	}
	next.kings = next.kings &^ bitboard(a.Captured)
	next.kings = next.kings &^ srcMask
	if wasKing || a.Promotes {
		next.kings |= dstMask
	}
	next.turn = b.turn.Opponent()
	return next
}

// Rotate returns the board rotated 180 degrees with colors swapped:
// every bit position i maps to 63-i, White and Black masks are exchanged
// after mirroring, kings mirror in place, and the turn flips. Rotating
// twice returns the original board.
func (b Board) Rotate() Board {
	mirror := func(bb bitboard) bitboard {
		var out bitboard
		for _, sq := range bb.squares() {
			out |= bbForSquare(Square(numSquares - 1 - int(sq)))
		}
		return out
	}
	return Board{
		white: mirror(b.black),
		black: mirror(b.white),
		kings: mirror(b.kings),
		turn:  b.turn.Opponent(),
	}
}

// String renders the board as an 8x8 diagram, useful for debugging.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n  A B C D E F G H\n")
	for row := numFiles - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < numFiles; col++ {
			sq := NewSquare(row, col)
			sb.WriteString(b.glyph(sq))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b Board) glyph(sq Square) string {
	switch {
	case b.white.occupied(sq) && b.kings.occupied(sq):
		return "W"
	case b.white.occupied(sq):
		return "w"
	case b.black.occupied(sq) && b.kings.occupied(sq):
		return "B"
	case b.black.occupied(sq):
		return "b"
	default:
		return "-"
	}
}

package dama

import (
	"math/bits"
	"strings"
)

// Action is an immutable description of one ply: a source square, a
// destination square, the full square-by-square path between them
// (length >= 2), the mask of enemy squares captured along the way, and
// whether the moving piece promotes on arrival.
type Action struct {
	Source      Square
	Destination Square
	Path        []Square
	Captured    uint64
	Promotes    bool
}

// IsCapture reports whether the action captures at least one enemy
// piece.
func (a Action) IsCapture() bool {
	return a.Captured != 0
}

// CaptureCount returns the number of enemy pieces removed by the action.
func (a Action) CaptureCount() int {
	return bits.OnesCount64(a.Captured)
}

// CapturedPieces returns the squares of every enemy piece removed by the
// action, in increasing square order.
func (a Action) CapturedPieces() []Square {
	return bitboard(a.Captured).squares()
}

// CapturedBitboard returns the raw captured mask.
func (a Action) CapturedBitboard() uint64 {
	return a.Captured
}

// IsPromotion reports whether the moving piece becomes a king on
// arrival.
func (a Action) IsPromotion() bool {
	return a.Promotes
}

// Notation renders the action in the canonical textual form: a simple
// move is "SRC-DST" (e.g. "A2-A3"); a capture is the path's squares
// joined by "x" (e.g. "D4xD6" or "D4xD6xF6" for a chained jump); a
// promotion suffix "=K" is appended when Promotes is true.
func (a Action) Notation() string {
	var sb strings.Builder
	if a.IsCapture() {
		for i, sq := range a.Path {
			if i > 0 {
				sb.WriteString("x")
			}
			sb.WriteString(sq.Notation())
		}
	} else {
		sb.WriteString(a.Source.Notation())
		sb.WriteString("-")
		sb.WriteString(a.Destination.Notation())
	}
	if a.Promotes {
		sb.WriteString("=K")
	}
	return sb.String()
}

// String implements the fmt.Stringer interface.
func (a Action) String() string {
	return a.Notation()
}

// Equal reports whether a and other have the same source, destination,
// full path, captured mask, and promotion flag.
func (a Action) Equal(other Action) bool {
	if a.Source != other.Source || a.Destination != other.Destination ||
		a.Captured != other.Captured || a.Promotes != other.Promotes {
		return false
	}
	if len(a.Path) != len(other.Path) {
		return false
	}
	for i, sq := range a.Path {
		if other.Path[i] != sq {
			return false
		}
	}
	return true
}

// Delta returns the XOR between board's three masks and the masks of
// apply(board, a): (whiteDelta, blackDelta, kingsDelta). The board
// passed in should be the board the action was generated from.
func (a Action) Delta(board Board) (whiteDelta, blackDelta, kingsDelta uint64) {
	next, err := board.Apply(a)
	if err != nil {
		return 0, 0, 0
	}
	return board.WhiteBitboard() ^ next.WhiteBitboard(),
		board.BlackBitboard() ^ next.BlackBitboard(),
		board.KingsBitboard() ^ next.KingsBitboard()
}

// DeltaArray returns the same triple as Delta, packed into a length-3
// array for consumers that prefer a slice-like value.
func (a Action) DeltaArray(board Board) [3]uint64 {
	w, b, k := a.Delta(board)
	return [3]uint64{w, b, k}
}

package dama

import "errors"

// Sentinel errors returned by constructors and mutators. Callers should
// use errors.Is to test for a specific kind; the wrapped message carries
// the offending input for logging.
var (
	// ErrInvalidSquare is returned for malformed notation, out-of-range
	// row/column pairs, or a mask without exactly one bit set.
	ErrInvalidSquare = errors.New("dama: invalid square")

	// ErrInvalidConfiguration is returned when a Board constructor is
	// given a king outside the piece sets, or overlapping white/black
	// masks.
	ErrInvalidConfiguration = errors.New("dama: invalid board configuration")

	// ErrIllegalMove is returned by Board.Apply when the given Action
	// was not produced by Board.Actions on that board.
	ErrIllegalMove = errors.New("dama: illegal move")
)

package dama

import (
	"fmt"
	"strings"
)

// ParseNotation parses a canonical action notation string — "A2-A3" for
// a simple move, "D4xD6xF6" for a capture chain, either with an "=K"
// promotion suffix — and matches it against board's legal actions. It
// returns ErrIllegalMove if no legal action has exactly that path.
//
// Unlike SAN, Dama notation already names every square on the path, so
// there is no piece-type or file/rank disambiguation step: parsing is
// reduced to splitting the string and matching the resulting path
// against the generator's output.
func ParseNotation(board Board, s string) (Action, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "=K")

	var parts []string
	switch {
	case strings.Contains(s, "x"):
		parts = strings.Split(s, "x")
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	default:
		return Action{}, fmt.Errorf("%w: %q has no move separator", ErrInvalidSquare, s)
	}
	if len(parts) < 2 {
		return Action{}, fmt.Errorf("%w: %q is not a complete move", ErrInvalidSquare, s)
	}

	path := make([]Square, len(parts))
	for i, p := range parts {
		sq, err := FromNotation(p)
		if err != nil {
			return Action{}, err
		}
		path[i] = sq
	}

	for _, candidate := range board.Actions() {
		if pathsEqual(candidate.Path, path) {
			return candidate, nil
		}
	}
	return Action{}, fmt.Errorf("%w: %q does not match a legal action", ErrIllegalMove, s)
}

func pathsEqual(a, b []Square) bool {
	if len(a) != len(b) {
		return false
	}
	for i, sq := range a {
		if b[i] != sq {
			return false
		}
	}
	return true
}

package dama

// direction is one of the four orthogonal steps Turkish Draughts pieces
// move and capture along. There are no diagonal moves in this variant.
type direction struct{ dRow, dCol int }

var (
	north = direction{dRow: 1, dCol: 0}
	south = direction{dRow: -1, dCol: 0}
	east  = direction{dRow: 0, dCol: 1}
	west  = direction{dRow: 0, dCol: -1}
)

var allDirections = [4]direction{north, south, east, west}

// step returns the square one step from sq in direction d, or
// (NoSquare, false) if that would leave the board.
func (sq Square) step(d direction) (Square, bool) {
	row := sq.Row() + d.dRow
	col := sq.Col() + d.dCol
	if row < 0 || row >= numFiles || col < 0 || col >= numFiles {
		return NoSquare, false
	}
	return NewSquare(row, col), true
}

// manDirections returns the directions a non-king man of the given team
// may move in for quiet moves: forward and sideways, never backward
// toward its own home rank. Capture directions are not restricted this
// way — walkMan tries all of allDirections.
func manDirections(t Team) [3]direction {
	if t == White {
		return [3]direction{north, east, west}
	}
	return [3]direction{south, east, west}
}

// Actions returns the legal actions for the side to move, applying
// mandatory capture and maximum-capture selection (SPEC_FULL.md §4.3).
func (b Board) Actions() []Action {
	captures := b.captureActions()
	if len(captures) > 0 {
		return selectMaxCaptures(captures)
	}
	return b.quietActions()
}

func selectMaxCaptures(actions []Action) []Action {
	max := 0
	for _, a := range actions {
		if n := a.CaptureCount(); n > max {
			max = n
		}
	}
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a.CaptureCount() == max {
			out = append(out, a)
		}
	}
	return out
}

// captureActions collects every terminal capture sequence available to
// the side to move, from every friendly piece, via depth-first
// expansion of capture chains.
func (b Board) captureActions() []Action {
	var out []Action
	for _, sq := range b.friendly().squares() {
		c := captureWalk{board: b, isKing: b.isKing(sq), team: b.turn}
		c.walk(sq, 0, []Square{sq}, &out)
	}
	return out
}

// captureWalk holds the state threaded through one piece's recursive
// capture-chain expansion. capturedSoFar accumulates the enemy squares
// removed along the current chain; those squares are treated as empty
// for the remainder of the chain (SPEC_FULL.md §4.3 rule 6) and may not
// be jumped a second time.
type captureWalk struct {
	board  Board
	isKing bool
	team   Team
}

func (c *captureWalk) effectivelyEmpty(sq Square, capturedSoFar bitboard) bool {
	return !c.board.occupied().occupied(sq) || capturedSoFar.occupied(sq)
}

func (c *captureWalk) isEnemy(sq Square, capturedSoFar bitboard) bool {
	return c.board.enemy().occupied(sq) && !capturedSoFar.occupied(sq)
}

// walk expands every continuation from current, appending a terminal
// Action to out whenever current has no further capture available.
func (c *captureWalk) walk(current Square, capturedSoFar bitboard, path []Square, out *[]Action) {
	extended := false
	if c.isKing {
		extended = c.walkKing(current, capturedSoFar, path, out)
	} else {
		extended = c.walkMan(current, capturedSoFar, path, out)
	}
	if !extended && capturedSoFar != 0 {
		*out = append(*out, Action{
			Source:      path[0],
			Destination: current,
			Path:        append([]Square(nil), path...),
			Captured:    uint64(capturedSoFar),
			Promotes:    !c.isKing && current.Row() == promotionRank(c.team),
		})
	}
}

func (c *captureWalk) walkMan(current Square, capturedSoFar bitboard, path []Square, out *[]Action) bool {
	extended := false
	for _, d := range allDirections {
		adjacent, ok := current.step(d)
		if !ok || !c.isEnemy(adjacent, capturedSoFar) {
			continue
		}
		landing, ok := adjacent.step(d)
		if !ok || !c.effectivelyEmpty(landing, capturedSoFar) {
			continue
		}
		extended = true
		nextCaptured := capturedSoFar | bbForSquare(adjacent)
		nextPath := append(append([]Square(nil), path...), landing)
		c.walk(landing, nextCaptured, nextPath, out)
	}
	return extended
}

func (c *captureWalk) walkKing(current Square, capturedSoFar bitboard, path []Square, out *[]Action) bool {
	extended := false
	for _, d := range allDirections {
		sq := current
		var enemySq Square
		foundEnemy := false
		for {
			next, ok := sq.step(d)
			if !ok {
				break
			}
			if c.effectivelyEmpty(next, capturedSoFar) {
				sq = next
				continue
			}
			if c.isEnemy(next, capturedSoFar) {
				enemySq = next
				foundEnemy = true
			}
			// Either a friendly piece or the one fresh enemy on this ray:
			// either way the ray stops scanning past it. Squares captured
			// earlier in this chain count as empty and were skipped above.
			break
		}
		if !foundEnemy {
			continue
		}
		nextCaptured := capturedSoFar | bbForSquare(enemySq)
		for landing, ok := enemySq.step(d); ok && c.effectivelyEmpty(landing, nextCaptured); landing, ok = landing.step(d) {
			extended = true
			nextPath := append(append([]Square(nil), path...), landing)
			c.walk(landing, nextCaptured, nextPath, out)
		}
	}
	return extended
}

// quietActions generates non-capture moves: single-step forward/
// sideways moves for men, and sliding moves for kings. Only called when
// no capture is available anywhere on the board (mandatory capture,
// SPEC_FULL.md §4.3 rule 5).
func (b Board) quietActions() []Action {
	var out []Action
	occ := b.occupied()
	for _, sq := range b.friendly().squares() {
		if b.isKing(sq) {
			reachable := kingSlideMask(occ, sq) &^ occ
			for _, next := range reachable.squares() {
				out = append(out, Action{Source: sq, Destination: next, Path: []Square{sq, next}})
			}
			continue
		}
		for _, d := range manDirections(b.turn) {
			next, ok := sq.step(d)
			if !ok || occ.occupied(next) {
				continue
			}
			out = append(out, Action{
				Source:      sq,
				Destination: next,
				Path:        []Square{sq, next},
				Promotes:    next.Row() == promotionRank(b.turn),
			})
		}
	}
	return out
}

package dama

// historyEntry records one played action alongside the information
// needed to undo it: the board before the action and the halfmove
// clock value before the action.
type historyEntry struct {
	action       Action
	prevBoard    Board
	prevHalfmove uint32
}

// Game is a mutable wrapper around Board that tracks move history, the
// halfmove clock, and position repetition counts. Board itself stays an
// immutable value type; Game is where turn-by-turn bookkeeping lives.
type Game struct {
	board          Board
	history        []historyEntry
	halfmoveClock  uint32
	moveCount      uint32
	positionCounts map[Board]uint32
}

// NewGame returns a new Game at the standard starting position.
func NewGame() *Game {
	return GameFromBoard(NewBoard())
}

// GameFromBoard returns a new Game starting from an arbitrary board,
// with empty history and a fresh repetition count seeded with that
// board.
func GameFromBoard(b Board) *Game {
	g := &Game{
		board:          b,
		positionCounts: make(map[Board]uint32),
	}
	g.positionCounts[b]++
	return g
}

// Board returns the current position.
func (g *Game) Board() Board { return g.board }

// Turn returns the side to move.
func (g *Game) Turn() Team { return g.board.Turn() }

// Actions returns the legal actions in the current position.
func (g *Game) Actions() []Action { return g.board.Actions() }

// Status returns the outcome of the current position.
func (g *Game) Status() GameStatus { return g.board.Status() }

// HalfmoveClock returns the number of plies since the last capture or
// promotion, used for draw bookkeeping by callers that extend these rules.
func (g *Game) HalfmoveClock() uint32 { return g.halfmoveClock }

// MoveCount returns the number of moves played so far.
func (g *Game) MoveCount() uint32 { return g.moveCount }

// MakeMove validates a against the current position's legal actions,
// applies it, and pushes an undo record. It returns ErrIllegalMove if a
// is not legal.
func (g *Game) MakeMove(a Action) error {
	next, err := g.board.Apply(a)
	if err != nil {
		return err
	}
	g.history = append(g.history, historyEntry{
		action:       a,
		prevBoard:    g.board,
		prevHalfmove: g.halfmoveClock,
	})
	g.board = next
	g.moveCount++
	if a.IsCapture() || a.IsPromotion() {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	g.positionCounts[g.board]++
	return nil
}

// UndoMove reverts the most recently played action. It reports false
// and does nothing if there is no move to undo.
func (g *Game) UndoMove() bool {
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	if g.positionCounts[g.board] <= 1 {
		delete(g.positionCounts, g.board)
	} else {
		g.positionCounts[g.board]--
	}

	g.board = last.prevBoard
	g.halfmoveClock = last.prevHalfmove
	g.moveCount--
	return true
}

// PositionCount returns how many times the current position has
// occurred so far in this game, including the present occurrence.
func (g *Game) PositionCount() uint32 {
	return g.positionCounts[g.board]
}

// IsThreefoldRepetition reports whether the current position has now
// occurred three or more times.
func (g *Game) IsThreefoldRepetition() bool {
	return g.PositionCount() >= 3
}

// ClearHistory discards undo history, repetition counts, the move
// count, and the halfmove clock, keeping only the current position.
// Useful after loading a position from an external source where prior
// history is not relevant.
func (g *Game) ClearHistory() {
	g.history = nil
	g.positionCounts = map[Board]uint32{g.board: 1}
	g.moveCount = 0
	g.halfmoveClock = 0
}

// Perft counts leaf positions reachable from the current position,
// delegating to Board.Perft.
func (g *Game) Perft(depth int) uint64 {
	return g.board.Perft(depth)
}

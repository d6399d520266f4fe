package dama

// Perft counts the leaf positions reachable after exactly depth plies
// from b, applying mandatory capture and maximum-capture selection at
// every ply. Perft(0) is 1 for any board; Perft(1) is len(b.Actions()).
//
// The canonical ladder for the starting position is 1, 8, 64, ... — not
// the higher node counts sometimes quoted for this opening, which come
// from a looser capture rule. This implementation follows the mandatory
// maximum-capture rule throughout, so do not "correct" these constants
// back upward.
func (b Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, a := range b.Actions() {
		// a was just produced by b.Actions() itself, so the legality scan
		// Apply would otherwise repeat for every node is redundant here.
		next := b.applyUnchecked(a)
		nodes += next.Perft(depth - 1)
	}
	return nodes
}

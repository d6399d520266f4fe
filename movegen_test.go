package dama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingPositionHasEightActions(t *testing.T) {
	b := NewBoard()
	assert.Len(t, b.Actions(), 8)
	for _, a := range b.Actions() {
		assert.False(t, a.IsCapture())
	}
}

func TestMandatoryCaptureScenario(t *testing.T) {
	b, err := BoardFromSquares(White, []Square{D4}, []Square{D5, H8}, nil)
	require.NoError(t, err)

	actions := b.Actions()
	require.Len(t, actions, 1)
	a := actions[0]
	assert.True(t, a.IsCapture())
	assert.Contains(t, a.Notation(), "x")
	assert.Equal(t, D5.ToMask(), a.CapturedBitboard())
	assert.Equal(t, D6, a.Destination)
}

func TestSimplePromotionScenario(t *testing.T) {
	b, err := BoardFromSquares(White, []Square{D7}, []Square{A1}, nil)
	require.NoError(t, err)

	actions := b.Actions()
	var found bool
	for _, a := range actions {
		if a.Destination == D8 {
			found = true
			assert.True(t, a.IsPromotion())
			assert.Contains(t, a.Notation(), "=K")
		}
	}
	assert.True(t, found, "expected an action landing on D8")
}

func TestManCannotMoveBackward(t *testing.T) {
	b, err := BoardFromSquares(White, []Square{D4}, nil, nil)
	require.NoError(t, err)
	for _, a := range b.Actions() {
		assert.NotEqual(t, D3, a.Destination, "white man must not move toward its own home rank")
	}

	b2, err := BoardFromSquares(Black, nil, []Square{D5}, nil)
	require.NoError(t, err)
	for _, a := range b2.Actions() {
		assert.NotEqual(t, D6, a.Destination, "black man must not move toward its own home rank")
	}
}

func TestMaximumCaptureRuleSelectsLongestChain(t *testing.T) {
	// D4 can chain two captures north (over D5 then D7, landing D8).
	// G4 can only capture once, jumping west over F4 to land on E4. The
	// maximum-capture rule must keep only D4's two-capture chain and
	// discard G4's one-capture option entirely.
	b, err := BoardFromSquares(White,
		[]Square{D4, G4},
		[]Square{D5, D7, F4},
		nil,
	)
	require.NoError(t, err)

	actions := b.Actions()
	require.NotEmpty(t, actions)
	maxCount := 0
	for _, a := range actions {
		if a.CaptureCount() > maxCount {
			maxCount = a.CaptureCount()
		}
	}
	assert.Equal(t, 2, maxCount, "D4 should chain D5 then D7 for two captures")
	for _, a := range actions {
		assert.Equal(t, maxCount, a.CaptureCount(), "every legal action must share the maximum capture count")
		assert.Equal(t, D4, a.Source, "G4's shorter one-capture option must be pruned entirely")
	}
}

func TestKingSlidesAnyDistanceWhenNoCapture(t *testing.T) {
	b, err := BoardFromSquares(White, []Square{D4}, nil, []Square{D4})
	require.NoError(t, err)

	actions := b.Actions()
	// Empty board apart from the king: it should reach every square on
	// its rank and file.
	assert.Len(t, actions, 7+7)
	for _, a := range actions {
		assert.False(t, a.IsCapture())
		assert.False(t, a.IsPromotion(), "kings never promote")
	}
}

func TestKingCaptureChoosesAnyLandingSquareBeyondTheCapture(t *testing.T) {
	b, err := BoardFromSquares(White, []Square{A1}, []Square{A3}, []Square{A1})
	require.NoError(t, err)

	actions := b.Actions()
	for _, a := range actions {
		assert.True(t, a.IsCapture())
		assert.Equal(t, A3.ToMask(), a.CapturedBitboard())
	}
	// A4 through A8 are all valid landing squares beyond the captured
	// piece at A3.
	assert.Len(t, actions, 5)
}

func TestKingMultiJumpContinuesAfterTurning(t *testing.T) {
	// King at A1 jumps the piece at A3 landing on A4, then turns east to
	// jump the piece at D4 landing anywhere from E4 to H4. The other
	// four landing squares from the first jump (A5-A8) don't align with
	// D4's rank, so they terminate after a single capture and are
	// pruned by the maximum-capture rule.
	b, err := BoardFromSquares(White, []Square{A1}, []Square{A3, D4}, []Square{A1})
	require.NoError(t, err)

	actions := b.Actions()
	require.Len(t, actions, 4, "landing anywhere from E4 to H4 after the second jump")
	for _, a := range actions {
		assert.Equal(t, 2, a.CaptureCount())
		assert.ElementsMatch(t, []Square{A3, D4}, a.CapturedPieces())
	}
}

func TestManMultiJumpMidSequencePromotionDeferred(t *testing.T) {
	// White man at D6 jumps north over D7 landing on D8 (promotion
	// rank), and must continue jumping east over E8 landing on F8 if
	// available; promotion should only apply to the terminal square.
	b, err := BoardFromSquares(White, []Square{D6}, []Square{D7, E8}, nil)
	require.NoError(t, err)

	actions := b.Actions()
	require.Len(t, actions, 1)
	a := actions[0]
	assert.Equal(t, 2, a.CaptureCount())
	assert.Equal(t, F8, a.Destination)
	assert.True(t, a.IsPromotion(), "promotion applies on the final landing square")
}

func TestManSingleJumpLandingOnPromotionRankPromotes(t *testing.T) {
	b, err := BoardFromSquares(White, []Square{D6}, []Square{D7}, nil)
	require.NoError(t, err)

	actions := b.Actions()
	require.Len(t, actions, 1)
	a := actions[0]
	assert.Equal(t, D8, a.Destination)
	assert.True(t, a.IsPromotion())
}

func TestCaptureCannotJumpTheSameEnemyTwice(t *testing.T) {
	// A man with only one enemy on the board cannot loop back onto it.
	b, err := BoardFromSquares(White, []Square{D4}, []Square{D5}, nil)
	require.NoError(t, err)

	actions := b.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, 1, actions[0].CaptureCount())
}

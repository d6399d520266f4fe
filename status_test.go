package dama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStartingPositionInProgress(t *testing.T) {
	s := NewBoard().Status()
	assert.True(t, s.IsInProgress())
	assert.False(t, s.IsDraw())
	assert.False(t, s.IsWon())
	assert.False(t, s.IsOver())
	assert.Nil(t, s.Winner())
}

func TestStatusOneVOneIsDraw(t *testing.T) {
	b, err := BoardFromSquares(White, []Square{A1}, []Square{H8}, nil)
	require.NoError(t, err)

	s := b.Status()
	assert.True(t, s.IsDraw())
	assert.True(t, s.IsOver())
	assert.False(t, s.IsWon())
	assert.Nil(t, s.Winner())
}

func TestStatusAnnihilationWinsForTheRemainingSide(t *testing.T) {
	whiteWins, err := BoardFromSquares(White, []Square{A1, B1}, nil, nil)
	require.NoError(t, err)
	s := whiteWins.Status()
	require.True(t, s.IsWon())
	require.NotNil(t, s.Winner())
	assert.Equal(t, White, *s.Winner())

	blackWins, err := BoardFromSquares(White, nil, []Square{A1, B1}, nil)
	require.NoError(t, err)
	s2 := blackWins.Status()
	require.True(t, s2.IsWon())
	require.NotNil(t, s2.Winner())
	assert.Equal(t, Black, *s2.Winner())
}

func TestStatusNoLegalActionsIsALossEvenWithMultiplePieces(t *testing.T) {
	// White's lone man at D4 is walled in on every side: north, east,
	// and west are each blocked by an adjacent black piece whose own
	// landing square beyond is also occupied, so no capture is possible
	// in any of the three directions either. No legal action for White,
	// so White loses; Black has more than one piece, so this is not a
	// material draw.
	b, err := BoardFromSquares(White,
		[]Square{D4},
		[]Square{D5, D6, E4, F4, C4, B4},
		nil,
	)
	require.NoError(t, err)
	require.Empty(t, b.Actions())

	s := b.Status()
	require.True(t, s.IsWon())
	assert.Equal(t, Black, *s.Winner())
}

func TestGameStatusStringAndEquality(t *testing.T) {
	assert.Contains(t, NewBoard().Status().String(), "Progress")
	assert.Equal(t, NewBoard().Status(), NewBoard().Status())
}

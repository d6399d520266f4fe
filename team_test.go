package dama

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamOpponentIsInvolutive(t *testing.T) {
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, White, White.Opponent().Opponent())
}

func TestTeamString(t *testing.T) {
	assert.Equal(t, "White", White.String())
	assert.Equal(t, "Black", Black.String())
}

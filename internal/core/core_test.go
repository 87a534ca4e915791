package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	assert.Equal(t, ColorBlack, OppositeColor(ColorWhite))
	assert.Equal(t, ColorWhite, OppositeColor(ColorBlack))

	assert.Equal(t, -1, ColorWhite.Forward())
	assert.Equal(t, 1, ColorBlack.Forward())
	assert.Equal(t, 0, ColorWhite.GoalRow())
	assert.Equal(t, 7, ColorBlack.GoalRow())

	assert.True(t, ColorWhite.Valid())
	assert.False(t, Color(0).Valid())
	assert.False(t, Color(3).Valid())
	assert.Equal(t, "white", ColorWhite.String())
	assert.Equal(t, byte('B'), ColorBlack.Symbol())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("b")
	require.NoError(t, err)
	assert.Equal(t, ColorBlack, c)

	_, err = ParseColor("red")
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	tests := []struct {
		loc    Location
		square string
	}{
		{Loc(6, 0), "a2"},
		{Loc(5, 0), "a3"},
		{Loc(0, 0), "a8"},
		{Loc(7, 7), "h1"},
		{Loc(3, 4), "e5"},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			assert.Equal(t, tt.square, tt.loc.String())

			parsed, err := ParseLocation(tt.square)
			require.NoError(t, err)
			assert.Equal(t, tt.loc, parsed)
		})
	}

	assert.Equal(t, "(8,0)", Loc(8, 0).String())
	assert.False(t, Loc(-1, 0).InBounds())
	assert.True(t, Loc(7, 7).InBounds())
}

func TestParseLocation_Invalid(t *testing.T) {
	for _, s := range []string{"", "a", "a9", "i1", "a0", "11", "a22"} {
		_, err := ParseLocation(s)
		assert.Error(t, err, "square %q", s)
	}

	loc, err := ParseLocation("C3")
	require.NoError(t, err)
	assert.Equal(t, Loc(5, 2), loc)
}

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("a2b3")
	require.NoError(t, err)
	assert.Equal(t, Loc(6, 0), from)
	assert.Equal(t, Loc(5, 1), to)
	assert.Equal(t, "a2b3", MoveString(from, to))

	_, _, err = ParseMove("a2")
	assert.Error(t, err)
	_, _, err = ParseMove("a2z3")
	assert.Error(t, err)
}

func TestStalemateRule(t *testing.T) {
	r, err := ParseStalemateRule("")
	require.NoError(t, err)
	assert.Equal(t, StalemateMover, r)

	r, err = ParseStalemateRule("opponent")
	require.NoError(t, err)
	assert.Equal(t, StalemateOpponent, r)
	assert.Equal(t, "opponent", r.String())

	_, err = ParseStalemateRule("both")
	assert.Error(t, err)
}

func TestWinState(t *testing.T) {
	assert.Equal(t, StateWhiteWins, WinState(ColorWhite))
	assert.Equal(t, StateBlackWins, WinState(ColorBlack))
	assert.Equal(t, "black wins", StateBlackWins.String())
	assert.Equal(t, "edge reached", EndEdgeReached.String())
}

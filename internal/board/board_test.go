package board

import (
	"testing"

	"breakthrough/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New()

	assert.Equal(t, 16, b.Count(core.ColorWhite))
	assert.Equal(t, 16, b.Count(core.ColorBlack))
	assert.Equal(t, StartingPosition, b.Position(core.ColorWhite))
}

func TestBoard_At(t *testing.T) {
	b := New()

	c, ok := b.At(core.Loc(0, 3))
	require.True(t, ok)
	assert.Equal(t, core.ColorBlack, c)

	_, ok = b.At(core.Loc(3, 3))
	assert.False(t, ok)

	// Out-of-range reads as empty.
	_, ok = b.At(core.Loc(-1, 3))
	assert.False(t, ok)
	_, ok = b.At(core.Loc(3, 8))
	assert.False(t, ok)
}

func TestBoard_PlaceAndClear(t *testing.T) {
	b := Empty()

	require.NoError(t, b.Place(core.Loc(4, 4), core.ColorWhite))
	c, ok := b.At(core.Loc(4, 4))
	require.True(t, ok)
	assert.Equal(t, core.ColorWhite, c)

	b.Clear(core.Loc(4, 4))
	_, ok = b.At(core.Loc(4, 4))
	assert.False(t, ok)

	assert.Error(t, b.Place(core.Loc(8, 0), core.ColorWhite))
	assert.Error(t, b.Place(core.Loc(0, 0), core.Color(0)))
}

func TestBoard_Relocate(t *testing.T) {
	// Given: a white pawn diagonally behind a black pawn
	b := Empty()
	require.NoError(t, b.Place(core.Loc(6, 0), core.ColorWhite))
	require.NoError(t, b.Place(core.Loc(5, 1), core.ColorBlack))

	// When: the white pawn is relocated onto the black one
	b.Relocate(core.Loc(6, 0), core.Loc(5, 1))

	// Then: the source is empty and the black pawn is gone
	_, ok := b.At(core.Loc(6, 0))
	assert.False(t, ok)
	c, _ := b.At(core.Loc(5, 1))
	assert.Equal(t, core.ColorWhite, c)
	assert.Zero(t, b.Count(core.ColorBlack))
}

func TestBoard_Clone(t *testing.T) {
	b := New()
	cp := b.Clone()

	cp.Clear(core.Loc(0, 0))

	_, ok := b.At(core.Loc(0, 0))
	assert.True(t, ok)
}

func TestBoard_Pieces(t *testing.T) {
	b := Empty()
	require.NoError(t, b.Place(core.Loc(5, 5), core.ColorBlack))
	require.NoError(t, b.Place(core.Loc(2, 1), core.ColorBlack))

	assert.Equal(t, []core.Location{core.Loc(2, 1), core.Loc(5, 5)}, b.Pieces(core.ColorBlack))
	assert.Empty(t, b.Pieces(core.ColorWhite))
}

func TestParsePosition(t *testing.T) {
	t.Run("Starting position", func(t *testing.T) {
		b, turn, err := ParsePosition(StartingPosition)
		require.NoError(t, err)

		assert.Equal(t, core.ColorWhite, turn)
		assert.Equal(t, New(), b)
	})

	t.Run("Round trip", func(t *testing.T) {
		pos := "3B4/8/2W5/8/8/5B2/8/W6W b"

		b, turn, err := ParsePosition(pos)
		require.NoError(t, err)

		assert.Equal(t, core.ColorBlack, turn)
		assert.Equal(t, pos, b.Position(turn))
	})

	tests := []struct {
		name string
		pos  string
	}{
		{"missing turn", "8/8/8/8/8/8/8/8"},
		{"too few rows", "8/8/8 w"},
		{"short row", "7/8/8/8/8/8/8/8 w"},
		{"long row", "BBBBBBBBB/8/8/8/8/8/8/8 w"},
		{"overflowing run", "4B4/8/8/8/8/8/8/8 w"},
		{"bad piece", "X7/8/8/8/8/8/8/8 w"},
		{"bad turn", "8/8/8/8/8/8/8/8 x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParsePosition(tt.pos)
			assert.Error(t, err)
		})
	}
}

func TestBoard_ToASCII(t *testing.T) {
	ascii := New().ToASCII()

	assert.Contains(t, ascii, "8 B B B B B B B B  8")
	assert.Contains(t, ascii, "4 . . . . . . . .  4")
	assert.Contains(t, ascii, "1 W W W W W W W W  1")
}

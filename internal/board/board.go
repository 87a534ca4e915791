// FILE: internal/board/board.go
package board

import (
	"fmt"
	"strings"

	"breakthrough/internal/core"
)

const (
	StartingPosition = "BBBBBBBB/BBBBBBBB/8/8/8/8/WWWWWWWW/WWWWWWWW w"
)

// Board is the fixed 8x8 grid. A zero cell is empty; otherwise it holds the
// occupant's color.
type Board struct {
	squares [core.BoardSize][core.BoardSize]core.Color
}

// New returns the standard starting layout: black on rows 0-1, white on rows 6-7.
func New() *Board {
	b := &Board{}
	for col := 0; col < core.BoardSize; col++ {
		b.squares[0][col] = core.ColorBlack
		b.squares[1][col] = core.ColorBlack
		b.squares[6][col] = core.ColorWhite
		b.squares[7][col] = core.ColorWhite
	}
	return b
}

// Empty returns a board with no pieces.
func Empty() *Board {
	return &Board{}
}

// At reports the occupant of loc. Out-of-range locations read as empty.
func (b *Board) At(loc core.Location) (core.Color, bool) {
	if !loc.InBounds() {
		return 0, false
	}
	c := b.squares[loc.Row][loc.Col]
	return c, c != 0
}

// Place puts a piece of color c on loc, replacing any occupant.
func (b *Board) Place(loc core.Location, c core.Color) error {
	if !loc.InBounds() {
		return fmt.Errorf("location %s out of range", loc)
	}
	if !c.Valid() {
		return fmt.Errorf("invalid color %d", c)
	}
	b.squares[loc.Row][loc.Col] = c
	return nil
}

// Clear empties loc. Out-of-range locations are ignored.
func (b *Board) Clear(loc core.Location) {
	if loc.InBounds() {
		b.squares[loc.Row][loc.Col] = 0
	}
}

// Relocate moves the occupant of from onto to, overwriting whatever was there.
func (b *Board) Relocate(from, to core.Location) {
	b.squares[to.Row][to.Col] = b.squares[from.Row][from.Col]
	b.squares[from.Row][from.Col] = 0
}

// Count returns the number of pieces of color c.
func (b *Board) Count(c core.Color) int {
	n := 0
	for r := 0; r < core.BoardSize; r++ {
		for f := 0; f < core.BoardSize; f++ {
			if b.squares[r][f] == c {
				n++
			}
		}
	}
	return n
}

// Pieces returns the locations of every piece of color c in row-major order.
func (b *Board) Pieces(c core.Color) []core.Location {
	var locs []core.Location
	for r := 0; r < core.BoardSize; r++ {
		for f := 0; f < core.BoardSize; f++ {
			if b.squares[r][f] == c {
				locs = append(locs, core.Loc(r, f))
			}
		}
	}
	return locs
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// ParsePosition reads a position string: eight rows from row 0 to row 7
// separated by '/', 'B'/'W' for pieces and digits for runs of empty cells,
// followed by the side to move ('w' or 'b').
func ParsePosition(pos string) (*Board, core.Color, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return nil, 0, fmt.Errorf("invalid position: expected 2 parts, got %d", len(parts))
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) != core.BoardSize {
		return nil, 0, fmt.Errorf("invalid position: expected %d rows, got %d", core.BoardSize, len(rows))
	}

	b := &Board{}
	for r, row := range rows {
		col := 0
		for _, ch := range row {
			switch {
			case ch >= '1' && ch <= '8':
				col += int(ch - '0')
			case ch == 'W' || ch == 'B':
				if col >= core.BoardSize {
					return nil, 0, fmt.Errorf("invalid position: too many cells in row %d", r)
				}
				if ch == 'W' {
					b.squares[r][col] = core.ColorWhite
				} else {
					b.squares[r][col] = core.ColorBlack
				}
				col++
			default:
				return nil, 0, fmt.Errorf("invalid position: unexpected %q in row %d", ch, r)
			}
		}
		if col != core.BoardSize {
			return nil, 0, fmt.Errorf("invalid position: row %d has %d cells", r, col)
		}
	}

	var turn core.Color
	switch parts[1] {
	case "w":
		turn = core.ColorWhite
	case "b":
		turn = core.ColorBlack
	default:
		return nil, 0, fmt.Errorf("invalid position: turn must be 'w' or 'b'")
	}

	return b, turn, nil
}

// Position renders b and the side to move as a position string.
func (b *Board) Position(turn core.Color) string {
	var sb strings.Builder
	for r := 0; r < core.BoardSize; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < core.BoardSize; f++ {
			c := b.squares[r][f]
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(c.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if turn == core.ColorBlack {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 0; r < core.BoardSize; r++ {
		sb.WriteString(fmt.Sprintf("%d ", core.BoardSize-r))
		for f := 0; f < core.BoardSize; f++ {
			c := b.squares[r][f]
			if c == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", c.Symbol()))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", core.BoardSize-r))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}

// FILE: internal/core/location.go
package core

import "fmt"

// Location addresses a cell by row and column. Row 0 is black's home edge,
// row 7 is white's.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Loc(row, col int) Location {
	return Location{Row: row, Col: col}
}

func (l Location) InBounds() bool {
	return l.Row >= 0 && l.Row < BoardSize && l.Col >= 0 && l.Col < BoardSize
}

// String renders the algebraic form: file a-h is the column, rank is 8-row.
// Out-of-range locations fall back to the (row,col) form.
func (l Location) String() string {
	if !l.InBounds() {
		return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
	}
	return fmt.Sprintf("%c%c", 'a'+l.Col, '0'+BoardSize-l.Row)
}

// ParseLocation reads a square such as "a2".
func ParseLocation(s string) (Location, error) {
	if len(s) != 2 {
		return Location{}, fmt.Errorf("invalid square %q", s)
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Location{}, fmt.Errorf("invalid square %q", s)
	}
	return Location{Row: BoardSize - int(rank-'0'), Col: int(file - 'a')}, nil
}

// ParseMove reads a move written as two squares, e.g. "a2a3".
func ParseMove(s string) (from, to Location, err error) {
	if len(s) != 4 {
		return Location{}, Location{}, fmt.Errorf("invalid move %q: expected 4 characters", s)
	}
	if from, err = ParseLocation(s[:2]); err != nil {
		return Location{}, Location{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	if to, err = ParseLocation(s[2:]); err != nil {
		return Location{}, Location{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return from, to, nil
}

func MoveString(from, to Location) string {
	return from.String() + to.String()
}

// FILE: internal/core/core.go
package core

import "fmt"

// BoardSize is the fixed edge length of the board.
const BoardSize = 8

// Color identifies one of the two sides. The zero value is not a color;
// callers that need "no color" carry an explicit ok flag instead.
type Color uint8

const (
	ColorWhite Color = iota + 1
	ColorBlack
)

func (c Color) Valid() bool {
	return c == ColorWhite || c == ColorBlack
}

// String returns the lowercase name used in API payloads and storage.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Symbol is the single letter used on boards and in position strings.
func (c Color) Symbol() byte {
	switch c {
	case ColorWhite:
		return 'W'
	case ColorBlack:
		return 'B'
	default:
		return '?'
	}
}

// Forward is the row delta of a forward step: white moves toward row 0.
func (c Color) Forward() int {
	switch c {
	case ColorWhite:
		return -1
	case ColorBlack:
		return 1
	default:
		return 0
	}
}

// GoalRow is the opponent's home edge.
func (c Color) GoalRow() int {
	switch c {
	case ColorWhite:
		return 0
	case ColorBlack:
		return BoardSize - 1
	default:
		return -1
	}
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// ParseColor accepts the long name or the single-letter turn marker.
func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "w", "W":
		return ColorWhite, nil
	case "black", "b", "B":
		return ColorBlack, nil
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}
}

type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
)

func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StateWhiteWins:
		return "white wins"
	case StateBlackWins:
		return "black wins"
	default:
		return "unknown"
	}
}

// WinState maps a winner to its terminal state.
func WinState(winner Color) State {
	if winner == ColorWhite {
		return StateWhiteWins
	}
	return StateBlackWins
}

// EndReason records which terminal condition concluded a game.
type EndReason int

const (
	EndNone EndReason = iota
	EndEdgeReached
	EndAnnihilation
	EndNoMoves
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndEdgeReached:
		return "edge reached"
	case EndAnnihilation:
		return "annihilation"
	case EndNoMoves:
		return "no moves"
	default:
		return "unknown"
	}
}

// StalemateRule selects whose moves the no-legal-move condition inspects
// after a move. StalemateMover checks the side that just moved, which is
// the classic behavior of this engine; StalemateOpponent checks the side
// about to move.
type StalemateRule int

const (
	StalemateMover StalemateRule = iota
	StalemateOpponent
)

func (r StalemateRule) String() string {
	switch r {
	case StalemateMover:
		return "mover"
	case StalemateOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

func ParseStalemateRule(s string) (StalemateRule, error) {
	switch s {
	case "", "mover":
		return StalemateMover, nil
	case "opponent":
		return StalemateOpponent, nil
	default:
		return 0, fmt.Errorf("invalid stalemate rule %q (use: mover, opponent)", s)
	}
}

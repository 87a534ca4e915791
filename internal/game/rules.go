// FILE: internal/game/rules.go
package game

import (
	"errors"
	"fmt"

	"breakthrough/internal/board"
	"breakthrough/internal/core"
)

var ErrIllegalMove = errors.New("illegal move")

var (
	ErrOutOfBounds      = fmt.Errorf("%w: location outside the board", ErrIllegalMove)
	ErrEmptySource      = fmt.Errorf("%w: no piece on the source square", ErrIllegalMove)
	ErrNotYourPiece     = fmt.Errorf("%w: piece belongs to the other player", ErrIllegalMove)
	ErrWrongDirection   = fmt.Errorf("%w: pawns move exactly one row forward", ErrIllegalMove)
	ErrIllegalOffset    = fmt.Errorf("%w: pawns move straight or one column diagonally", ErrIllegalMove)
	ErrBlocked          = fmt.Errorf("%w: straight moves cannot capture", ErrIllegalMove)
	ErrNothingToCapture = fmt.Errorf("%w: diagonal moves must capture", ErrIllegalMove)
	ErrOwnPiece         = fmt.Errorf("%w: cannot capture own piece", ErrIllegalMove)
)

// neighborOffsets are the row/column deltas scanned by the no-legal-move check.
var neighborOffsets = [6][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Check explains why from->to is illegal for the side to move, or returns nil.
// It does not look at whether the game is over.
func (g *Game) Check(from, to core.Location) error {
	return g.checkFor(g.turn, from, to)
}

func (g *Game) checkFor(side core.Color, from, to core.Location) error {
	if !from.InBounds() || !to.InBounds() {
		return ErrOutOfBounds
	}

	piece, ok := g.board.At(from)
	if !ok {
		return ErrEmptySource
	}
	if piece != side {
		return ErrNotYourPiece
	}

	if to.Row-from.Row != piece.Forward() {
		return ErrWrongDirection
	}

	target, occupied := g.board.At(to)
	switch abs(to.Col - from.Col) {
	case 0:
		if occupied {
			return ErrBlocked
		}
		return nil
	case 1:
		if !occupied {
			return ErrNothingToCapture
		}
		if target == piece {
			return ErrOwnPiece
		}
		return nil
	default:
		return ErrIllegalOffset
	}
}

// terminal evaluates the end conditions in order after a move has been
// applied and before the turn switches.
func (g *Game) terminal() core.EndReason {
	if edgeReached(g.board) {
		return core.EndEdgeReached
	}
	if g.board.Count(core.ColorWhite) == 0 || g.board.Count(core.ColorBlack) == 0 {
		return core.EndAnnihilation
	}

	side := g.turn
	if g.rule == core.StalemateOpponent {
		side = core.OppositeColor(g.turn)
	}
	if !g.hasLegalMove(side) {
		return core.EndNoMoves
	}

	return core.EndNone
}

func (g *Game) hasLegalMove(side core.Color) bool {
	for _, from := range g.board.Pieces(side) {
		for _, d := range neighborOffsets {
			to := core.Loc(from.Row+d[0], from.Col+d[1])
			if !to.InBounds() {
				continue
			}
			if g.checkFor(side, from, to) == nil {
				return true
			}
		}
	}
	return false
}

func edgeReached(b *board.Board) bool {
	for col := 0; col < core.BoardSize; col++ {
		if c, ok := b.At(core.Loc(core.ColorWhite.GoalRow(), col)); ok && c == core.ColorWhite {
			return true
		}
		if c, ok := b.At(core.Loc(core.ColorBlack.GoalRow(), col)); ok && c == core.ColorBlack {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

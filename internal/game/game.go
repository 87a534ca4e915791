// FILE: internal/game/game.go
package game

import (
	"errors"
	"fmt"

	"breakthrough/internal/board"
	"breakthrough/internal/core"
)

var (
	ErrGameOver        = errors.New("game is already over")
	ErrInvalidPosition = errors.New("invalid position")
)

// MoveRecord is one applied move in the game history.
type MoveRecord struct {
	From     core.Location `json:"from"`
	To       core.Location `json:"to"`
	Color    core.Color    `json:"color"`
	Captured bool          `json:"captured"`
}

func (m MoveRecord) String() string {
	return core.MoveString(m.From, m.To)
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move     string         `json:"move"`
	From     core.Location  `json:"from"`
	To       core.Location  `json:"to"`
	Color    core.Color     `json:"color"`
	Captured bool           `json:"captured"`
	State    core.State     `json:"state"`
	Reason   core.EndReason `json:"reason"`
}

// Snapshot is a value copy of a game, safe to hand to other goroutines.
type Snapshot struct {
	Position        string
	InitialPosition string
	Board           *board.Board
	Turn            core.Color
	Winner          core.Color // zero while the game is in progress
	State           core.State
	Reason          core.EndReason
	Rule            core.StalemateRule
	Moves           []string
	LastResult      *MoveResult
}

// Game is a single Breakthrough game: board, side to move and outcome.
// It is not safe for concurrent use; callers sharing a Game must serialize access.
type Game struct {
	board      *board.Board
	turn       core.Color
	winner     core.Color
	reason     core.EndReason
	rule       core.StalemateRule
	initial    string
	history    []MoveRecord
	lastResult *MoveResult
}

type Option func(*Game)

// WithStalemateRule selects whose moves the no-legal-move check inspects.
func WithStalemateRule(rule core.StalemateRule) Option {
	return func(g *Game) {
		g.rule = rule
	}
}

// New starts a game from the standard layout with white to move.
func New(opts ...Option) *Game {
	g := &Game{
		board:   board.New(),
		turn:    core.ColorWhite,
		initial: board.StartingPosition,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromPosition starts a game from a position string. Positions that are
// already decided, or where the side to move cannot move, are rejected.
func FromPosition(pos string, opts ...Option) (*Game, error) {
	b, turn, err := board.ParsePosition(pos)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}

	g := &Game{
		board: b,
		turn:  turn,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.initial = g.Position()

	if edgeReached(b) {
		return nil, fmt.Errorf("%w: a pawn already stands on the opposing edge", ErrInvalidPosition)
	}
	if b.Count(core.ColorWhite) == 0 || b.Count(core.ColorBlack) == 0 {
		return nil, fmt.Errorf("%w: both colors need at least one pawn", ErrInvalidPosition)
	}
	if !g.hasLegalMove(turn) {
		return nil, fmt.Errorf("%w: %s has no legal move", ErrInvalidPosition, turn)
	}

	return g, nil
}

// OccupantAt reports the color on loc, ok=false for an empty cell.
// Out-of-range locations read as empty.
func (g *Game) OccupantAt(loc core.Location) (core.Color, bool) {
	return g.board.At(loc)
}

// PlayerInTurn is the side allowed to move. After the game ends it stays
// on the winner.
func (g *Game) PlayerInTurn() core.Color {
	return g.turn
}

// Winner reports the winner once the game is decided.
func (g *Game) Winner() (core.Color, bool) {
	return g.winner, g.winner.Valid()
}

func (g *Game) State() core.State {
	if g.winner.Valid() {
		return core.WinState(g.winner)
	}
	return core.StateOngoing
}

func (g *Game) Reason() core.EndReason {
	return g.reason
}

func (g *Game) Rule() core.StalemateRule {
	return g.rule
}

// IsValidMove reports whether from->to is legal for the side to move.
func (g *Game) IsValidMove(from, to core.Location) bool {
	return g.Check(from, to) == nil
}

// Move attempts from->to and reports whether it was applied.
func (g *Game) Move(from, to core.Location) bool {
	_, err := g.Apply(from, to)
	return err == nil
}

// Apply performs from->to. It returns ErrGameOver once the game is decided,
// or an error wrapping ErrIllegalMove; in both cases nothing changes.
func (g *Game) Apply(from, to core.Location) (MoveResult, error) {
	if g.winner.Valid() {
		return MoveResult{}, ErrGameOver
	}
	if err := g.Check(from, to); err != nil {
		return MoveResult{}, err
	}

	mover := g.turn
	_, captured := g.board.At(to)
	g.board.Relocate(from, to)

	record := MoveRecord{From: from, To: to, Color: mover, Captured: captured}
	g.history = append(g.history, record)

	result := MoveResult{
		Move:     record.String(),
		From:     from,
		To:       to,
		Color:    mover,
		Captured: captured,
		State:    core.StateOngoing,
	}

	if reason := g.terminal(); reason != core.EndNone {
		// The turn stays with the mover: there is no next turn.
		g.winner = mover
		g.reason = reason
		result.State = core.WinState(mover)
		result.Reason = reason
	} else {
		g.turn = core.OppositeColor(mover)
	}

	g.lastResult = &result
	return result, nil
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

// Moves returns the applied moves in notation, oldest first.
func (g *Game) Moves() []string {
	moves := make([]string, 0, len(g.history))
	for _, m := range g.history {
		moves = append(moves, m.String())
	}
	return moves
}

func (g *Game) History() []MoveRecord {
	return append([]MoveRecord(nil), g.history...)
}

// Board returns a copy of the current board.
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

func (g *Game) Position() string {
	return g.board.Position(g.turn)
}

func (g *Game) InitialPosition() string {
	return g.initial
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Position:        g.Position(),
		InitialPosition: g.initial,
		Board:           g.board.Clone(),
		Turn:            g.turn,
		Winner:          g.winner,
		State:           g.State(),
		Reason:          g.reason,
		Rule:            g.rule,
		Moves:           g.Moves(),
	}
	if g.lastResult != nil {
		last := *g.lastResult
		s.LastResult = &last
	}
	return s
}

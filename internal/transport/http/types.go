// FILE: internal/transport/http/types.go
package http

import (
	"breakthrough/internal/core"
	"breakthrough/internal/game"
)

// buildGameResponse converts a snapshot into the API representation
func buildGameResponse(gameID string, snap game.Snapshot) core.GameResponse {
	resp := core.GameResponse{
		GameID:    gameID,
		Position:  snap.Position,
		Turn:      snap.Turn.String(),
		State:     stateToString(snap.State),
		Stalemate: snap.Rule.String(),
		Moves:     snap.Moves,
	}

	if snap.Winner.Valid() {
		resp.Winner = snap.Winner.String()
		resp.Reason = reasonToString(snap.Reason)
	}

	if r := snap.LastResult; r != nil {
		resp.LastMove = &core.MoveInfo{
			Move:     r.Move,
			Color:    r.Color.String(),
			Captured: r.Captured,
		}
	}

	if resp.Moves == nil {
		resp.Moves = []string{}
	}

	return resp
}

func stateToString(s core.State) string {
	switch s {
	case core.StateWhiteWins:
		return "white_wins"
	case core.StateBlackWins:
		return "black_wins"
	default:
		return "ongoing"
	}
}

func reasonToString(r core.EndReason) string {
	switch r {
	case core.EndEdgeReached:
		return "edge_reached"
	case core.EndAnnihilation:
		return "annihilation"
	case core.EndNoMoves:
		return "no_moves"
	default:
		return ""
	}
}

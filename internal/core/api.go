// FILE: internal/core/api.go
package core

// Request types

type CreateGameRequest struct {
	Position  string `json:"position,omitempty" validate:"omitempty,max=100"`
	Stalemate string `json:"stalemate,omitempty" validate:"omitempty,oneof=mover opponent"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,len=4"` // two squares, e.g. "a2a3"
}

// Response types

type GameResponse struct {
	GameID    string    `json:"gameId"`
	Position  string    `json:"position"`
	Turn      string    `json:"turn"`
	State     string    `json:"state"`
	Winner    string    `json:"winner,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Stalemate string    `json:"stalemate"`
	Moves     []string  `json:"moves"`
	LastMove  *MoveInfo `json:"lastMove,omitempty"`
}

type MoveInfo struct {
	Move     string `json:"move"`
	Color    string `json:"color"`
	Captured bool   `json:"captured,omitempty"`
}

type BoardResponse struct {
	Position string `json:"position"`
	Board    string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

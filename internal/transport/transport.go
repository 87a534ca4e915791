// FILE: internal/transport/transport.go
package transport

import (
	"breakthrough/internal/board"
	"breakthrough/internal/core"
	"breakthrough/internal/game"
)

// View abstracts display/output operations
type View interface {
	DisplayBoard(b *board.Board)
	ShowMessage(msg string)
	ShowError(err error)
	ShowGameHistory(snap game.Snapshot)
	ShowMove(result game.MoveResult)
	ShowGameOver(winner core.Color, reason core.EndReason)
	ShowPrompt(prompt string)
}

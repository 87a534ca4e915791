package cli

import (
	"bytes"
	"strings"
	"testing"

	"breakthrough/internal/cli"
	"breakthrough/internal/core"
	"breakthrough/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, lines ...string) (string, *CLIHandler) {
	t.Helper()
	var out bytes.Buffer
	view := cli.New(cli.NewScannerReader(strings.NewReader(strings.Join(lines, "\n")+"\n")), &out)
	svc := service.New(nil, zerolog.Nop())
	t.Cleanup(func() { _ = svc.Close() })

	h := New(svc, view, core.StalemateMover)
	require.NoError(t, h.Run())
	return out.String(), h
}

func TestSessionPlaysMoves(t *testing.T) {
	// When: a game is started and both sides move
	out, h := runScript(t, "new", "a2a3", "h7h6", "position", "history", "quit")

	// Then: the board, position and history are printed
	assert.Contains(t, out, "Welcome to Breakthrough!")
	assert.Contains(t, out, "Game started (stalemate rule: mover). white to move.")
	assert.Contains(t, out, "BBBBBBBB/BBBBBBB1/7B/8/8/W7/1WWWWWWW/WWWWWWWW w")
	assert.Contains(t, out, "1. a2a3 | h7h6")
	assert.Contains(t, out, "[W]> ")
	assert.Contains(t, out, "[B]> ")
	assert.NotEmpty(t, h.gameID)
}

func TestSessionRejectsIllegalMove(t *testing.T) {
	out, _ := runScript(t, "new", "a2a4", "a7a6", "zz", "position")

	assert.Contains(t, out, "Error: invalid move a2a4")
	assert.Contains(t, out, "Error: invalid move a7a6")
	assert.Contains(t, out, `Error: invalid move "zz"`)
	// Nothing changed
	assert.Contains(t, out, "BBBBBBBB/BBBBBBBB/8/8/8/8/WWWWWWWW/WWWWWWWW w")
}

func TestSessionWinFromPosition(t *testing.T) {
	// Given: white one step from the far edge
	out, _ := runScript(t, "resume 7B/W7/8/8/8/8/8/8 w", "a7a8", "h8h7")

	// Then: the win is announced and further moves are refused
	assert.Contains(t, out, "Game Over: white wins (reached the far edge)")
	assert.Contains(t, out, "The game is over.")
}

func TestSessionCommandsWithoutGame(t *testing.T) {
	out, h := runScript(t, "a2a3", "history", "resume", "new sideways", "resume nonsense w", "color blue", "color brown", "verbose", "help")

	assert.Contains(t, out, "No active game. Use 'new'")
	assert.Contains(t, out, "No active game.")
	assert.Contains(t, out, "Usage: resume <position>")
	assert.Contains(t, out, "Error: invalid stalemate rule")
	assert.Contains(t, out, "could not start the game")
	assert.Contains(t, out, "invalid theme: blue")
	assert.Contains(t, out, "Color theme set to: brown")
	assert.Contains(t, out, "Verbose mode: true")
	assert.Contains(t, out, "Commands:")
	assert.Empty(t, h.gameID)
}

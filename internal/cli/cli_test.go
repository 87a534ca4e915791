package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"breakthrough/internal/board"
	"breakthrough/internal/core"
	"breakthrough/internal/game"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines  []string
	err    error
	prompt string
}

func (s *scriptedReader) Readline() (string, error) {
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedReader) SetPrompt(p string) { s.prompt = p }

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		typ   CommandType
		args  []string
		raw   string
	}{
		{"new", CmdNew, []string{}, ""},
		{"new opponent", CmdNew, []string{"opponent"}, ""},
		{"resume 8/8/8/3B4/8/3W4/8/8 w", CmdResume, []string{"8/8/8/3B4/8/3W4/8/8", "w"}, "8/8/8/3B4/8/3W4/8/8 w"},
		{"a2a3", CmdMove, []string{"a2a3"}, ""},
		{"A2A3", CmdMove, []string{"A2A3"}, ""},
		{"color green", CmdColor, []string{"green"}, ""},
		{"verbose", CmdVerbose, nil, ""},
		{"history", CmdHistory, nil, ""},
		{"pos", CmdPosition, nil, ""},
		{"?", CmdHelp, nil, ""},
		{"EXIT", CmdQuit, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := parseCommand(tt.input)
			assert.Equal(t, tt.typ, cmd.Type)
			if tt.args != nil {
				assert.Equal(t, tt.args, cmd.Args)
			}
			assert.Equal(t, tt.raw, cmd.Raw)
		})
	}
}

func TestGetCommand(t *testing.T) {
	// Given: a reader with a blank line, a move, then EOF
	c := New(&scriptedReader{lines: []string{"   ", " a2a3 "}}, io.Discard)

	cmd, err := c.GetCommand()
	require.NoError(t, err)
	assert.Equal(t, CmdNone, cmd.Type)

	cmd, err = c.GetCommand()
	require.NoError(t, err)
	assert.Equal(t, CmdMove, cmd.Type)
	assert.Equal(t, []string{"a2a3"}, cmd.Args)

	// Then: end of input reads as quit
	cmd, err = c.GetCommand()
	require.NoError(t, err)
	assert.Equal(t, CmdQuit, cmd.Type)

	// And: Ctrl-C reads as quit too
	c = New(&scriptedReader{err: readline.ErrInterrupt}, io.Discard)
	cmd, err = c.GetCommand()
	require.NoError(t, err)
	assert.Equal(t, CmdQuit, cmd.Type)
}

func TestScannerReader(t *testing.T) {
	r := NewScannerReader(strings.NewReader("new\na2a3\n"))

	line, err := r.Readline()
	require.NoError(t, err)
	assert.Equal(t, "new", line)
	line, err = r.Readline()
	require.NoError(t, err)
	assert.Equal(t, "a2a3", line)
	_, err = r.Readline()
	assert.ErrorIs(t, err, io.EOF)
}

func TestShowPrompt(t *testing.T) {
	// When: the reader renders prompts itself
	reader := &scriptedReader{}
	var out bytes.Buffer
	New(reader, &out).ShowPrompt("[W]> ")

	// Then: nothing is written to the output
	assert.Equal(t, "[W]> ", reader.prompt)
	assert.Empty(t, out.String())

	// When: the reader is a plain scanner
	out.Reset()
	New(NewScannerReader(strings.NewReader("")), &out).ShowPrompt("> ")

	// Then: the prompt is printed
	assert.Equal(t, "> ", out.String())
}

func TestDisplayBoard(t *testing.T) {
	var out bytes.Buffer
	c := New(&scriptedReader{}, &out)

	c.DisplayBoard(board.New())

	text := out.String()
	assert.Contains(t, text, "8 B B B B B B B B")
	assert.Contains(t, text, "5 . . . . . . . .")
	assert.Contains(t, text, "1 W W W W W W W W")
	assert.NotContains(t, text, "\033[")

	// With a theme the ANSI codes appear
	out.Reset()
	require.NoError(t, c.SetTheme(ThemeGreen))
	c.DisplayBoard(board.New())
	assert.Contains(t, out.String(), "\033[48;5;157m")

	assert.Error(t, c.SetTheme("purple"))
}

func TestShowGameHistory(t *testing.T) {
	var out bytes.Buffer
	c := New(&scriptedReader{}, &out)

	// Given: a game started with black to move and three plies played
	c.ShowGameHistory(game.Snapshot{
		InitialPosition: "8/3B4/8/8/8/8/3W4/8 b",
		Position:        "8/8/8/8/8/8/8/8 w",
		Moves:           []string{"d7d6", "d2d3", "d6d5"},
		State:           core.StateOngoing,
	})

	// Then: black's opening ply is shown in the second column
	text := out.String()
	assert.Contains(t, text, "1. ... | d7d6")
	assert.Contains(t, text, "2. d2d3 | d6d5")
	assert.Contains(t, text, "Game state: ongoing")
}

func TestShowMoveAndGameOver(t *testing.T) {
	var out bytes.Buffer
	c := New(&scriptedReader{}, &out)
	result := game.MoveResult{Move: "b2c3", Color: core.ColorWhite, Captured: true}

	// Quiet by default
	c.ShowMove(result)
	assert.Empty(t, out.String())

	assert.True(t, c.ToggleVerbose())
	c.ShowMove(result)
	assert.Contains(t, out.String(), "white: b2c3 (capture)")

	c.ShowGameOver(core.ColorBlack, core.EndNoMoves)
	assert.Contains(t, out.String(), "Game Over: black wins (left no legal moves)")
}

// FILE: internal/cli/cli.go
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"breakthrough/internal/board"
	"breakthrough/internal/core"
	"breakthrough/internal/game"

	"github.com/chzyer/readline"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdColor
	CmdVerbose
	CmdHistory
	CmdPosition
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m",
		darkBg:  "\033[48;5;22m",
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m",
		darkBg:  "\033[48;5;240m",
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

// LineReader supplies one line of input per call. *readline.Instance
// satisfies it; io.EOF ends the session.
type LineReader interface {
	Readline() (string, error)
}

// prompter is implemented by readers that render the prompt themselves.
type prompter interface {
	SetPrompt(prompt string)
}

// ScannerReader adapts any io.Reader for non-interactive input.
type ScannerReader struct {
	scanner *bufio.Scanner
}

func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(r)}
}

func (s *ScannerReader) Readline() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

type CLI struct {
	input   LineReader
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  ThemeOff,
	}
}

// GetCommand reads a command synchronously. End of input and interrupts
// read as quit.
func (c *CLI) GetCommand() (*Command, error) {
	line, err := c.input.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return &Command{Type: CmdQuit}, nil
		}
		return nil, err
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return &Command{Type: CmdNone}, nil
	}

	return parseCommand(input), nil
}

func parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: strings.Join(args, " ")}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "verbose":
		return &Command{Type: CmdVerbose}
	case "history":
		return &Command{Type: CmdHistory}
	case "position", "pos":
		return &Command{Type: CmdPosition}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Assume it's a move
		return &Command{Type: CmdMove, Args: []string{parts[0]}}
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (c *CLI) ShowPrompt(prompt string) {
	if p, ok := c.input.(prompter); ok {
		p.SetPrompt(prompt)
		return
	}
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n  a b c d e f g h\n")

	for r := 0; r < core.BoardSize; r++ {
		sb.WriteString(fmt.Sprintf("%d ", core.BoardSize-r))
		for f := 0; f < core.BoardSize; f++ {
			piece, occupied := b.At(core.Loc(r, f))

			if c.theme == ThemeOff {
				if occupied {
					sb.WriteString(fmt.Sprintf("%c ", piece.Symbol()))
				} else {
					sb.WriteString(". ")
				}
				continue
			}

			bg := theme.darkBg
			if (r+f)%2 == 0 {
				bg = theme.lightBg
			}

			if !occupied {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
				continue
			}
			fg := theme.black
			if piece == core.ColorWhite {
				fg = theme.white
			}
			sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, fg, piece.Symbol(), theme.reset))
		}
		sb.WriteString(fmt.Sprintf(" %d\n", core.BoardSize-r))
	}
	sb.WriteString("  a b c d e f g h\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new [rule]        - Start a new game (rule: mover|opponent, default mover)
  resume <position> - Start from a position, e.g. 'resume 8/8/8/3B4/8/3W4/8/8 w'
  <move>            - Move a pawn (e.g., a2a3, d2e3)
  color <theme>     - Set board color theme (off|brown|green|gray)
  verbose           - Toggle capture details after each move
  history           - Show game move history
  position          - Print the current position string
  quit/exit         - Exit the program
  help/?            - Show this help message

Pawns move one row forward, straight onto an empty square or diagonally
onto an opposing pawn. Reach the far edge or take every opposing pawn to win.`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Breakthrough!")
	c.ShowMessage("Commands: new, resume <position>, <move>, history, position, color, verbose, help/?, quit/exit")
	c.ShowMessage("White (W) moves up the board and starts. Example first move: 'a2a3'.")
	c.ShowMessage("")
}

func (c *CLI) ShowGameHistory(snap game.Snapshot) {
	c.ShowMessage(fmt.Sprintf("Starting position: %s", snap.InitialPosition))

	plies := snap.Moves
	if strings.HasSuffix(snap.InitialPosition, " b") {
		plies = append([]string{"..."}, plies...)
	}
	for i := 0; i < len(plies); i += 2 {
		num := i/2 + 1
		if i+1 < len(plies) {
			c.ShowMessage(fmt.Sprintf("%d. %s | %s", num, plies[i], plies[i+1]))
		} else {
			c.ShowMessage(fmt.Sprintf("%d. %s | ...", num, plies[i]))
		}
	}
	c.ShowMessage(fmt.Sprintf("Current position: %s", snap.Position))
	c.ShowMessage(fmt.Sprintf("Game state: %s", snap.State))
}

func (c *CLI) ShowMove(result game.MoveResult) {
	if !c.verbose {
		return
	}
	if result.Captured {
		c.ShowMessage(fmt.Sprintf("%s: %s (capture)", result.Color, result.Move))
	} else {
		c.ShowMessage(fmt.Sprintf("%s: %s", result.Color, result.Move))
	}
}

func (c *CLI) ShowGameOver(winner core.Color, reason core.EndReason) {
	var why string
	switch reason {
	case core.EndEdgeReached:
		why = "reached the far edge"
	case core.EndAnnihilation:
		why = "captured every opposing pawn"
	case core.EndNoMoves:
		why = "left no legal moves"
	default:
		why = reason.String()
	}
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s wins (%s)", winner, why))
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}

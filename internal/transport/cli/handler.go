// FILE: internal/transport/cli/handler.go
package cli

import (
	"errors"
	"fmt"

	"breakthrough/internal/cli"
	"breakthrough/internal/core"
	"breakthrough/internal/game"
	"breakthrough/internal/service"
	"breakthrough/internal/transport"
)

// Console is the terminal view the handler drives
type Console interface {
	transport.View
	GetCommand() (*cli.Command, error)
	SetTheme(theme cli.ColorTheme) error
	ToggleVerbose() bool
	ShowHelp()
	ShowWelcome()
}

type CLIHandler struct {
	svc         *service.Service
	view        Console
	defaultRule core.StalemateRule
	gameID      string
}

func New(svc *service.Service, view Console, defaultRule core.StalemateRule) *CLIHandler {
	return &CLIHandler{
		svc:         svc,
		view:        view,
		defaultRule: defaultRule,
	}
}

// Run is the main loop; it returns when the user quits or input ends.
func (h *CLIHandler) Run() error {
	h.view.ShowWelcome()
	for {
		h.view.ShowPrompt(h.getPrompt())

		cmd, err := h.view.GetCommand()
		if err != nil {
			return err
		}

		if !h.ProcessCommand(cmd) {
			return nil
		}
	}
}

// getPrompt shows whose turn it is while a game is running
func (h *CLIHandler) getPrompt() string {
	if h.gameID != "" {
		snap, err := h.svc.GetGame(h.gameID)
		if err == nil && snap.State == core.StateOngoing {
			return fmt.Sprintf("[%c]> ", snap.Turn.Symbol())
		}
	}
	return "> "
}

// ProcessCommand handles one command; false means exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:

	case cli.CmdNew:
		rule := h.defaultRule
		if len(cmd.Args) > 0 {
			r, err := core.ParseStalemateRule(cmd.Args[0])
			if err != nil {
				h.view.ShowError(err)
				return true
			}
			rule = r
		}
		h.startGame("", rule)

	case cli.CmdResume:
		if cmd.Raw == "" {
			h.view.ShowMessage("Usage: resume <position>")
			return true
		}
		h.startGame(cmd.Raw, h.defaultRule)

	case cli.CmdMove:
		h.handleMove(cmd.Args[0])

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}

		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
		if snap, err := h.svc.GetGame(h.gameID); err == nil {
			h.view.DisplayBoard(snap.Board)
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		snap, ok := h.current()
		if !ok {
			return true
		}
		h.view.ShowGameHistory(snap)

	case cli.CmdPosition:
		snap, ok := h.current()
		if !ok {
			return true
		}
		h.view.ShowMessage(snap.Position)

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) current() (game.Snapshot, bool) {
	if h.gameID == "" {
		h.view.ShowMessage("No active game.")
		return game.Snapshot{}, false
	}
	snap, err := h.svc.GetGame(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		return game.Snapshot{}, false
	}
	return snap, true
}

func (h *CLIHandler) handleMove(move string) {
	if h.gameID == "" {
		h.view.ShowMessage("No active game. Use 'new' or 'resume <position>'.")
		return
	}

	from, to, err := core.ParseMove(move)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	snap, err := h.svc.MakeMove(h.gameID, from, to)
	if err != nil {
		if errors.Is(err, game.ErrGameOver) {
			h.view.ShowMessage("The game is over. Start a new game with 'new' or 'resume'.")
			return
		}
		h.view.ShowError(fmt.Errorf("invalid move %s: %w", move, err))
		return
	}

	if snap.LastResult != nil {
		h.view.ShowMove(*snap.LastResult)
	}
	h.view.DisplayBoard(snap.Board)

	if snap.State != core.StateOngoing {
		h.view.ShowGameOver(snap.Winner, snap.Reason)
	}
}

func (h *CLIHandler) startGame(position string, rule core.StalemateRule) {
	id := h.svc.GenerateGameID()
	snap, err := h.svc.NewGame(id, position, rule)
	if err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %w", err))
		return
	}

	if h.gameID != "" {
		_ = h.svc.DeleteGame(h.gameID)
	}
	h.gameID = id

	h.view.ShowMessage(fmt.Sprintf("Game started (stalemate rule: %s). %s to move.", rule, snap.Turn))
	h.view.DisplayBoard(snap.Board)
}

// FILE: cmd/breakthrough/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"breakthrough/internal/cli"
	"breakthrough/internal/config"
	"breakthrough/internal/service"
	clihandler "breakthrough/internal/transport/cli"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	ucli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func main() {
	cmd := &ucli.Command{
		Name:  "breakthrough",
		Usage: "play Breakthrough in the terminal",
		Flags: []ucli.Flag{
			&ucli.StringFlag{Name: "stalemate", Usage: "stalemate rule for new games: mover or opponent"},
			&ucli.StringFlag{Name: "theme", Value: "off", Usage: "board colors: off, brown, green, gray"},
			&ucli.StringFlag{Name: "log-level", Value: "warn", Usage: "diagnostic log level on stderr"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *ucli.Command) error {
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if cmd.IsSet("stalemate") {
		cfg.Stalemate = cmd.String("stalemate")
	}
	cfg.LogLevel = cmd.String("log-level")
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := config.NewLogger(cfg, os.Stderr)

	input, closeInput, err := newLineReader()
	if err != nil {
		return err
	}
	defer closeInput()

	view := cli.New(input, os.Stdout)
	if err := view.SetTheme(cli.ColorTheme(cmd.String("theme"))); err != nil {
		return err
	}

	svc := service.New(nil, log)
	defer svc.Close()

	return clihandler.New(svc, view, cfg.StalemateRule()).Run()
}

// newLineReader uses readline on a terminal and a plain scanner for piped input
func newLineReader() (cli.LineReader, func(), error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return cli.NewScannerReader(os.Stdin), func() {}, nil
	}

	historyFile := ""
	if dir, err := os.UserCacheDir(); err == nil {
		historyFile = filepath.Join(dir, "breakthrough_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          os.Stdout,
		Stderr:          io.Discard,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return rl, func() { rl.Close() }, nil
}

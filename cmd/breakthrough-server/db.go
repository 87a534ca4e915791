// FILE: cmd/breakthrough-server/db.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"breakthrough/internal/storage"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

func dbCommand() *cli.Command {
	pathFlag := &cli.StringFlag{
		Name:     "path",
		Usage:    "database file path",
		Required: true,
	}

	return &cli.Command{
		Name:  "db",
		Usage: "maintain the game database",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "create the schema",
				Flags:  []cli.Flag{pathFlag},
				Action: runInit,
			},
			{
				Name:   "delete",
				Usage:  "remove the database file",
				Flags:  []cli.Flag{pathFlag},
				Action: runDelete,
			},
			{
				Name:  "query",
				Usage: "list stored games",
				Flags: []cli.Flag{
					pathFlag,
					&cli.StringFlag{Name: "gameId", Usage: "game ID to filter (* for all)"},
					&cli.StringFlag{Name: "winner", Usage: "winner to filter: white, black (* for all)"},
					&cli.BoolFlag{Name: "moves", Usage: "list moves of each game"},
				},
				Action: runQuery,
			},
		},
	}
}

func openStore(path string) (*storage.Store, error) {
	return storage.NewStore(path, false, zerolog.Nop())
}

func runInit(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	store, err := openStore(path)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Fprintf(cmd.Root().Writer, "Database initialized at: %s\n", path)
	return nil
}

func runDelete(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("database not found: %w", err)
	}

	store, err := openStore(path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	if err := store.DeleteDB(); err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}

	fmt.Fprintf(cmd.Root().Writer, "Database deleted: %s\n", path)
	return nil
}

func runQuery(_ context.Context, cmd *cli.Command) error {
	store, err := openStore(cmd.String("path"))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	games, err := store.QueryGames(cmd.String("gameId"), cmd.String("winner"))
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	out := cmd.Root().Writer
	if len(games) == 0 {
		fmt.Fprintln(out, "No games found")
		return nil
	}

	printGames(out, games)

	if cmd.Bool("moves") {
		for _, g := range games {
			moves, err := store.QueryMoves(g.GameID)
			if err != nil {
				return fmt.Errorf("query moves failed: %w", err)
			}
			printMoves(out, g.GameID, moves)
		}
	}

	fmt.Fprintf(out, "\nFound %d game(s)\n", len(games))
	return nil
}

func printGames(out io.Writer, games []storage.GameRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Game ID\tRule\tWinner\tReason\tStart Time")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, g := range games {
		winner, reason := "-", "-"
		if g.Winner.Valid {
			winner = g.Winner.String
		}
		if g.EndReason.Valid {
			reason = g.EndReason.String
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(g.GameID),
			g.StalemateRule,
			winner,
			reason,
			g.StartTimeUTC.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()
}

func printMoves(out io.Writer, gameID string, moves []storage.MoveRecord) {
	fmt.Fprintf(out, "\n%s:\n", gameID)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, m := range moves {
		capture := ""
		if m.Captured {
			capture = "x"
		}
		fmt.Fprintf(w, "  %d.\t%s\t%s\t%s\t%s\n", m.MoveNumber, m.PlayerColor, m.Move, capture, m.PositionAfter)
	}
	w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}

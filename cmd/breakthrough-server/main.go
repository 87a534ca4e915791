// Package main implements the Breakthrough server: a REST API over the game
// engine with optional SQLite persistence, plus database maintenance commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"breakthrough/internal/config"
	"breakthrough/internal/service"
	"breakthrough/internal/storage"
	transporthttp "breakthrough/internal/transport/http"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

func main() {
	cmd := &cli.Command{
		Name:  "breakthrough-server",
		Usage: "Breakthrough game REST API server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file"},
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file loaded before configuration"},
			&cli.StringFlag{Name: "api-host", Usage: "API server host"},
			&cli.IntFlag{Name: "api-port", Usage: "API server port"},
			&cli.BoolFlag{Name: "dev", Usage: "development mode (relaxed rate limits, WAL journal)"},
			&cli.StringFlag{Name: "storage-path", Usage: "SQLite database file (persistence disabled if empty)"},
			&cli.StringFlag{Name: "pid", Usage: "optional path to write PID file"},
			&cli.BoolFlag{Name: "pid-lock", Usage: "lock PID file to allow only one instance (requires --pid)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "stalemate", Usage: "default stalemate rule: mover or opponent"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the API server (default)",
				Action: runServe,
			},
			dbCommand(),
		},
		Action: runServe,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads .env, then file/env configuration, then applies flags
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	root := cmd.Root()

	// A missing dotenv file is fine
	_ = godotenv.Load(root.String("env-file"))

	cfg, err := config.Load(root.String("config"))
	if err != nil {
		return nil, err
	}

	if root.IsSet("api-host") {
		cfg.API.Host = root.String("api-host")
	}
	if root.IsSet("api-port") {
		cfg.API.Port = int(root.Int("api-port"))
	}
	if root.IsSet("dev") {
		cfg.Dev = root.Bool("dev")
	}
	if root.IsSet("storage-path") {
		cfg.Storage.Path = root.String("storage-path")
	}
	if root.IsSet("pid") {
		cfg.PID.Path = root.String("pid")
	}
	if root.IsSet("pid-lock") {
		cfg.PID.Lock = root.Bool("pid-lock")
	}
	if root.IsSet("log-level") {
		cfg.LogLevel = root.String("log-level")
	}
	if root.IsSet("stalemate") {
		cfg.Stalemate = root.String("stalemate")
	}

	return cfg, cfg.Validate()
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := config.NewLogger(cfg, os.Stderr)

	if cfg.PID.Path != "" {
		cleanup, err := managePIDFile(cfg.PID.Path, cfg.PID.Lock)
		if err != nil {
			return fmt.Errorf("failed to manage PID file: %w", err)
		}
		defer cleanup()
		log.Info().Str("path", cfg.PID.Path).Bool("lock", cfg.PID.Lock).Msg("PID file created")
	}

	// 1. Storage (optional)
	var recorder service.Recorder
	if cfg.Storage.Path != "" {
		store, err := storage.NewStore(cfg.Storage.Path, cfg.Dev, log)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		if err := store.InitDB(); err != nil {
			store.Close()
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
		recorder = store
		log.Info().Str("path", cfg.Storage.Path).Msg("persistent storage enabled")
	} else {
		log.Info().Msg("persistent storage disabled (use --storage-path to enable)")
	}

	// 2. Service
	svc := service.New(recorder, log)

	// 3. HTTP app
	app := transporthttp.NewFiberApp(svc, transporthttp.Options{
		DevMode:   cfg.Dev,
		Stalemate: cfg.StalemateRule(),
		Logger:    log,
	})

	addr := cfg.API.Addr()
	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", "http://"+addr).
			Bool("dev", cfg.Dev).
			Str("stalemate", cfg.Stalemate).
			Msg("Breakthrough API server starting")
		serveErr <- app.Listen(addr)
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("API server listen error")
		}
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	// Close the service first so long-poll requests return before the server drains
	if err := svc.Close(); err != nil {
		log.Warn().Err(err).Msg("service close error")
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
	return nil
}

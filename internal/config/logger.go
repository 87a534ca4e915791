// FILE: internal/config/logger.go
package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// ParseLevel accepts zerolog level names; empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(level)
}

// NewLogger builds the process logger. With format "auto" a terminal gets
// the human-readable console writer and anything else gets JSON lines.
func NewLogger(cfg *Config, out *os.File) zerolog.Logger {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = out
	switch cfg.LogFormat {
	case "console":
		w = consoleWriter(out)
	case "json":
	default:
		if term.IsTerminal(int(out.Fd())) {
			w = consoleWriter(out)
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
}

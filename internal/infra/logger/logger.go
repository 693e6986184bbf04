// Package logger installs the process-wide slog handler.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/finance-app/backend/config"
)

// Setup builds the handler for cfg and makes it the slog default.
func Setup(cfg *config.Config) *slog.Logger {
	logger := New(os.Stderr, cfg.Log.Level, cfg.Log.Format == "json" || cfg.IsProduction())
	slog.SetDefault(logger)
	return logger
}

// New returns a JSON logger, or a colourised text logger for local use.
func New(w io.Writer, level string, jsonOutput bool) *slog.Logger {
	lvl := ParseLevel(level)
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps debug, warn and error; anything else is info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

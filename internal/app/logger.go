package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger the app writes alongside graph dumps.
// It never touches the global default, so parallel App instances stay
// isolated. Config validation rejects unknown levels before they reach
// here; anything unexpected falls back to info.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

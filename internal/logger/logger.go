package logger

import (
	"log/slog"
	"os"
)

// New creates the process-wide slog.Logger. Logs go to stderr because
// stdout carries the rendered catalog, cart and order views.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}

package util

import (
	"log/slog"
	"os"
)

type Logger = *slog.Logger

// NewLogger builds the process logger. Diagnostics go to stderr so the
// summary line on stdout stays machine-readable.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Services receive it through their options
// rather than reaching for the global default.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

package config

import (
	"io"
	"log/slog"
	"os"
)

// InitLogger configures the default slog logger with JSON output at the given level.
// Unknown levels fall back to info.
func InitLogger(level string) *slog.Logger {
	return NewLogger(os.Stdout, level)
}

func NewLogger(w io.Writer, level string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)
	return logger
}

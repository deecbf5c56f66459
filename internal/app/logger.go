package app

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process-wide JSON logger and installs it as the slog default.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})

	log := slog.New(h)
	slog.SetDefault(log)
	return log
}

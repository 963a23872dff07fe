// Package logger holds the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the shared logger. It is usable before Init is called and
// defaults to warn level on stderr.
var Log = newLogger(slog.LevelWarn)

// Init replaces Log with a logger filtering at the named level
// ("debug", "info", "warn", "error"). Unknown values keep warn.
func Init(level string) {
	Log = newLogger(ParseLevel(level))
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

/*
Package tlog is a custom log package which uses github.com/lmittmann/tint.
*/
package tlog

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

const timeFormat = "15:04:05"

// ParseLevel converts a level name to slog.Level. Empty input falls back to
// the LOG_LEVEL environment variable, unknown names to info.
func ParseLevel(level string) slog.Level {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}

	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New instantiates a logger writing to stderr.
func New(level string, noColor bool) *slog.Logger {
	return NewWithWriter(os.Stderr, level, noColor)
}

// NewWithWriter instantiates a logger writing to w.
func NewWithWriter(w io.Writer, level string, noColor bool) *slog.Logger {
	if os.Getenv("LOG_COLORIZE") != "" {
		noColor = false
	}

	opts := &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: timeFormat,
		NoColor:    noColor,
	}

	return slog.New(tint.NewHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(tint.NewHandler(io.Discard, &tint.Options{NoColor: true}))
}

package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelSilent is above every standard level and suppresses all output
const LevelSilent = slog.Level(100)

// NewLogger creates a logger with the tidyfiles line format.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDiscardLogger creates a logger that discards all output.
func NewDiscardLogger() *slog.Logger {
	return slog.New(NewHandler(io.Discard, &slog.HandlerOptions{Level: LevelSilent}))
}

// LevelFromString converts debug, info, warn or error (case-insensitive) to a
// slog.Level. Unrecognized strings map to warn.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// IsValidLevel reports whether s names a known level
func IsValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// LevelFromVerbosity converts CLI flags to a level:
// quiet suppresses everything, 0 is warn, 1 is info, 2+ is debug.
func LevelFromVerbosity(verbosity int, quiet bool) slog.Level {
	if quiet {
		return LevelSilent
	}
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// ResolveLevel picks the effective level. CLI flags win over the configured
// level when either -v or --quiet was given.
func ResolveLevel(configured string, verbosity int, quiet bool) slog.Level {
	if quiet || verbosity > 0 {
		return LevelFromVerbosity(verbosity, quiet)
	}
	if configured == "" {
		return slog.LevelWarn
	}
	return LevelFromString(configured)
}

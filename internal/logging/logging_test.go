package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.Info("Moved file", "file", "trip_photo1.jpg", "count", 2)

	output := buf.String()
	want := "[info] Moved file | file=trip_photo1.jpg count=2\n"
	if output != want {
		t.Errorf("got %q, want %q", output, want)
	}
}

func TestHandler_NoAttrs(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo).Warn("plain")

	if got := buf.String(); got != "[warn] plain\n" {
		t.Errorf("got %q", got)
	}
}

func TestHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("debug message should be filtered")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered")
	}
	if !strings.Contains(output, "[warn] warn message") {
		t.Error("warn message should be included")
	}
	if !strings.Contains(output, "[error] error message") {
		t.Error("error message should be included")
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug).
		With("run_id", "abc").
		WithGroup("move")

	logger.Debug("step", "dest", "trip")

	output := buf.String()
	if !strings.Contains(output, "run_id=abc") {
		t.Errorf("expected run_id attribute, got: %s", output)
	}
	if !strings.Contains(output, "move.dest=trip") {
		t.Errorf("expected grouped key, got: %s", output)
	}
}

func TestNewDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should not be enabled for any level")
	}
	logger.Error("nothing happens")
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := LevelFromString(tt.in); got != tt.want {
				t.Errorf("LevelFromString(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, s := range []string{"debug", "Info", "warn", "error"} {
		if !IsValidLevel(s) {
			t.Errorf("IsValidLevel(%q) = false", s)
		}
	}
	if IsValidLevel("trace") {
		t.Error("IsValidLevel(trace) = true")
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		quiet     bool
		want      slog.Level
	}{
		{"default", 0, false, slog.LevelWarn},
		{"-v", 1, false, slog.LevelInfo},
		{"-vv", 2, false, slog.LevelDebug},
		{"-vvv", 3, false, slog.LevelDebug},
		{"quiet", 0, true, LevelSilent},
		{"quiet wins", 2, true, LevelSilent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelFromVerbosity(tt.verbosity, tt.quiet); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveLevel(t *testing.T) {
	if got := ResolveLevel("debug", 0, false); got != slog.LevelDebug {
		t.Errorf("configured level ignored: %v", got)
	}
	if got := ResolveLevel("debug", 1, false); got != slog.LevelInfo {
		t.Errorf("-v should override config: %v", got)
	}
	if got := ResolveLevel("", 0, false); got != slog.LevelWarn {
		t.Errorf("empty config should default to warn: %v", got)
	}
	if got := ResolveLevel("debug", 0, true); got != LevelSilent {
		t.Errorf("quiet should override config: %v", got)
	}
}

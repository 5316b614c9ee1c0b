package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/KunitakeHyuga/Hackathon/internal/config"
)

// NewLogger builds the process logger, writes it to the destination named by
// cfg.Output and installs it as the slog default. The returned func releases a log file
// and is a no-op for the standard streams.
//
// Format "json" emits one JSON object per record; anything else emits text
// with source locations. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	w, closeFn, err := openLogOutput(cfg.Output)
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(w, cfg)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}

	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func openLogOutput(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stderr":
		return os.Stderr, noop, nil
	case "stdout":
		return os.Stdout, noop, nil
	case "discard", "none":
		return io.Discard, noop, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}
	return f, f.Close, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

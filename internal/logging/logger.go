// Package logging defines the structured-logging interface used across
// syncserver, with slog and zap implementations.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "commit finished", "sharing_group", id, "transferred", n)
type Logger interface {
	// Debug logs verbose diagnostics.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

const (
	FormatSlog = "slog"
	FormatZap  = "zap"
)

// ParseLevel maps a configured level name (debug, info, warn, error) to a
// slog level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return l, nil
}

// New builds a JSON logger writing to w for the given backend name. Entries
// below level are dropped.
func New(format, level string, w io.Writer) (Logger, error) {
	minLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch format {
	case "", FormatSlog:
		return NewSlogJSONLogger(w, minLevel), nil
	case FormatZap:
		return NewZapJSONLogger(w, zapLevel(minLevel)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

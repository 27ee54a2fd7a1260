// Package logging provides structured logging configuration using log/slog.
//
// Filing-scoped loggers carry the filing run ID so every log entry for one
// parse run can be correlated, the same way request IDs correlate entries
// in a web service.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type ctxKey int

const filingIDKey ctxKey = 0

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" format when the output is machine-parsed, "text" for humans.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// WithFiling returns a context carrying the filing run ID, for use with
// [FromContext].
func WithFiling(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, filingIDKey, id)
}

// FromContext returns a logger enriched with the filing run ID when the
// context carries one.
//
// Usage:
//
//	ctx := logging.WithFiling(ctx, filing.ID())
//	logger := logging.FromContext(ctx)
//	logger.Info("decoding filing", "form", cover.FormType)
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if id, ok := ctx.Value(filingIDKey).(uuid.UUID); ok {
		logger = logger.With("filing_id", id)
	}

	return logger
}

// WithFields returns a logger with additional structured fields, useful for
// operation-specific loggers that carry consistent context through a
// multi-step process.
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}

// Package logging builds the service's slog logger and carries the
// request-scoped child logger through context.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//
// The Logging middleware stores a child logger carrying request_id and
// correlation_id; Authenticate adds the caller. Services pick it up with
// FromContext and log failures with the operation, the task or user id, and
// the error chain:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to update task status",
//	    slog.String("operation", "UpdateStatus"),
//	    slog.String("task_id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler built by New runs attributes through the masq redactor, so
// credentials and inline image data never reach the sink.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive); anything else means info. format "text" selects
// the text handler, anything else JSON. Debug level adds source locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a copy of ctx whose logger carries the extra attributes.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

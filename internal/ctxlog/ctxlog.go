// Package ctxlog carries a slog.Logger through context.Context, so the
// loading and execution layers log through the App's configured logger
// without threading it as an explicit parameter.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported so no other package can collide with this context key.
type key struct{}

// WithLogger returns a child context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// FromContext returns the logger carried by ctx. Contexts without one get
// the process-wide default logger, so callers can log unconditionally.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(key{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

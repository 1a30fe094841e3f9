package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey is the context key under which a logger travels with a
// command invocation.
type loggerKey struct{}

// WithLogger returns a context carrying the given logger. A nil context
// starts from context.Background.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx, falling back to the
// package default when none was attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	logger, ok := ctx.Value(loggerKey{}).(*log.Logger)
	if !ok || logger == nil {
		return Default()
	}
	return logger
}

// Package logging defines a minimal structured-logging interface so that
// services can be handed a logger instead of reaching for a global.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs, e.g. log.Info(ctx, "listening", "addr", addr).
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// Package logging defines the structured-logging interface shared by the
// client packages. The slog implementation below is the only one in-tree,
// but session, chat, and the REPL depend on the interface so tests can
// capture output.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// interpreted as key-value pairs:
//
//	log.Info(ctx, "chat connected", "url", hubURL)
type Logger interface {
	// Debug logs chatty diagnostics (reconnect attempts, frame traces).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions (send while disconnected).
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey int

const (
	sessionIDKey contextKey = iota
)

// NewSessionID returns a fresh identifier for one run of the program.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSessionID returns a new context carrying the given session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext extracts the session ID, or "" when none is set.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// LoggerFromContext returns a logger tagged with the context's session ID.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := Logger()
	if id := SessionIDFromContext(ctx); id != "" {
		logger = logger.With(KeySessionID, id)
	}
	return logger
}

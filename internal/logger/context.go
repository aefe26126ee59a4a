package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// ContextWithLogger stores a logger in the context.
func ContextWithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// ContextWithUser stores a logger scoped to the given Telegram user in the
// context. Every log line emitted while handling that user's update carries
// the user_id field.
func ContextWithUser(ctx context.Context, base *zap.Logger, userID int64) context.Context {
	return ContextWithLogger(ctx, base.With(zap.Int64("user_id", userID)))
}

// FromContext extracts a logger from the context.
// Returns zap.NewNop() if no logger is found.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

package dbmetrics

import "context"

type txContextKey struct{}

// WithExecutor returns a context carrying exec as the active executor.
// Transaction managers use this to make repositories run their queries
// inside the open transaction.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, exec)
}

// GetExecutor returns the executor carried by ctx, or fallback when the
// call is not running inside a managed transaction.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(txContextKey{}).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction reports whether ctx carries a managed transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(DBExecutor)
	return ok
}

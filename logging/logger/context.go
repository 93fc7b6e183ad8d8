package logger

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

const runIDKey = "run_id"

// RunID returns the run ID stored in ctx, if any.
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// EnsureRunID makes sure ctx carries a run ID and returns it.
func EnsureRunID(ctx context.Context) (context.Context, string) {
	if id := RunID(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return context.WithValue(ctx, ctxKey{}, id), id
}

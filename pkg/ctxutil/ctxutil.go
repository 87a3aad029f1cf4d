package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey ctxKey = "run_id"
	bookKey  ctxKey = "book"
)

// WithRunID stores the batch run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the batch run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithBook stores the current book name in the context.
func WithBook(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, bookKey, name)
}

// BookFromCtx extracts the book name from the context.
// Returns an empty string if absent.
func BookFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(bookKey).(string)
	return name
}

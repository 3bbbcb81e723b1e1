package logging

import "context"

type contextKey string

const (
	opKey     contextKey = "op"
	sourceKey contextKey = "source"
)

// WithOp adds the name of the running operation (import, export, ...) to the
// context.
func WithOp(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, opKey, op)
}

// WithSource adds the file or stream an operation reads from or writes to.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// GetOp retrieves the operation name from the context.
// Returns empty string if not present.
func GetOp(ctx context.Context) string {
	if v, ok := ctx.Value(opKey).(string); ok {
		return v
	}
	return ""
}

// GetSource retrieves the source from the context.
// Returns empty string if not present.
func GetSource(ctx context.Context) string {
	if v, ok := ctx.Value(sourceKey).(string); ok {
		return v
	}
	return ""
}

package logging

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const (
	// runIDKey carries the identifier of a single format run.
	runIDKey contextKey = "run_id"
	// fileKey carries the path of the file being formatted.
	fileKey contextKey = "file"
)

// ContextWithRunID returns a context carrying a format run identifier.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// ContextWithFile returns a context carrying the path being formatted.
func ContextWithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, fileKey, path)
}

// RunIDFromContext extracts the run identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok
}

// FileFromContext extracts the file path, if present.
func FileFromContext(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(fileKey).(string)
	return path, ok
}

// extractContextFields collects known context values as slog key/value
// pairs, ready to prepend to log args.
func extractContextFields(ctx context.Context) []any {
	var fields []any
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, "run_id", id)
	}
	if path, ok := FileFromContext(ctx); ok {
		fields = append(fields, "file", path)
	}
	return fields
}

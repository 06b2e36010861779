package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for
	// component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the
	// per-invocation correlation identifier.
	FieldRunID = "run_id"
	// FieldPacker is the standardized structured logging key for packing
	// strategy names.
	FieldPacker = "packer"
)

type runIDKey struct{}

// WithRunID stores a correlation identifier for this invocation in ctx.
func WithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext extracts the correlation identifier, if any.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	runID, ok := ctx.Value(runIDKey{}).(string)
	return runID, ok && runID != ""
}

// WithContext returns a logger augmented with the standardized fields
// derivable from ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if runID, ok := RunIDFromContext(ctx); ok {
		logger = logger.With(slog.String(FieldRunID, runID))
	}
	return logger
}

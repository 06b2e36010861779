// Package logging assembles the structured slog loggers used across the
// codec CLI.
//
// It owns the console and JSON handler construction, standard field names,
// and context helpers that tag log lines with the per-invocation run ID.
// Prefer these constructors over hand-rolled slog setup so every component
// emits the same shape of output.
package logging

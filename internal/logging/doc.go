// Package logging assembles the structured slog loggers used across the
// analyzer.
//
// It centralizes level and output plumbing for the console and JSON handlers
// and provides a no-op logger for tests and wiring code that cannot fail.
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape and routing.
package logging

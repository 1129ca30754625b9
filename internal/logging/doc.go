// Package logging assembles structured slog loggers and formatting helpers used
// across lbrytools.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing (including rotated log files), and exposes context-aware helpers so
// probe code can tag log lines with a probe identifier. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing.
package logging

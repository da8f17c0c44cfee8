// Package logging assembles structured slog loggers and formatting helpers used
// across oggify.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so conversion code can tag log
// lines with run IDs, task names, and worker slots. When a log directory is
// configured, records are duplicated into a JSON log file alongside the
// console output. The package also provides a no-op logger for tests.
package logging

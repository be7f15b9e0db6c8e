// Package log records validation runs as a stream of structured events.
//
// Every run emits a start event, one result event per (target, rule) pair
// and an end event carrying the summary counts. Events share the run's
// identifier so that several runs can be appended to the same file.
//
// This is separate from operational logging (slog): the event log is a
// machine-readable record of outcomes that can be filtered and compared
// between runs.
//
// # Basic Usage
//
//	// Console output via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// Binary file
//	logger, _ := log.NewFileLogger("results.vlog")
//
//	// Both
//	logger := log.NewMultiLogger(console, file)
//
// # File Format
//
// Log files are a sequence of CBOR-encoded events with integer keys,
// conventionally with the .vlog extension. Use [NewReader] or the
// "layoutcheck events" command to read them back.
package log

// Package logging constructs the slog loggers used across wordfreq.
//
// Two output formats are supported: a human-oriented console format with
// optional ANSI color when the destination is a terminal, and line-delimited
// JSON for machine consumption. Diagnostics always target stderr so the
// analysis report on stdout stays parseable.
package logging

// Package log provides structured logging for the sharutils tools on top
// of [log/slog].
//
// A [Logger] is an immutable value configured with functional options:
// output writer, minimum [Level], output [Format], timestamp layout,
// caller info, and colorized pretty printing. The package-level functions
// log through a default logger writing to standard error, reconfigured
// once at startup via [Config].
//
// Diagnostic output always goes to standard error; the tools reserve
// standard output for their payload and informational text.
package log

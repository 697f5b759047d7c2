package log

import (
	"log/slog"
	"os"
)

// defaultLog is the process-wide logger used by the package-level
// functions. Diagnostics go to standard error.
//
//nolint:gochecknoglobals
var defaultLog = Make(os.Stderr)

// Config updates the default logger with the given options. It is meant
// to be called once during startup, before any goroutines log.
func Config(opts ...Option) {
	defaultLog = defaultLog.Wrap(opts...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	defaultLog.Debug(msg, attrs...)
}

// Info logs a message at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) {
	defaultLog.Info(msg, attrs...)
}

// Warn logs a message at Warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	defaultLog.Warn(msg, attrs...)
}

// Error logs a message at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) {
	defaultLog.Error(msg, attrs...)
}

// With returns a new [Logger] that includes the given attributes in each
// log message using the default logger.
func With(attrs ...slog.Attr) Logger {
	return defaultLog.With(attrs...)
}

// Package core provides the fundamental interfaces and types for gamekit.
package core

// Logger is the leveled trace logging interface.
//
// Format strings follow fmt.Sprintf conventions. A message is emitted only
// when its level reaches the logger's minimum threshold; levels at or above
// the logger's exit threshold terminate the process after emission.
type Logger interface {
	// Trace writes a trace-level message.
	Trace(format string, args ...any)

	// Debug writes a debug-level message.
	Debug(format string, args ...any)

	// Info writes an info-level message.
	Info(format string, args ...any)

	// Warning writes a warning-level message.
	Warning(format string, args ...any)

	// Error writes an error-level message.
	Error(format string, args ...any)

	// Fatal writes a fatal-level message.
	Fatal(format string, args ...any)

	// Write writes a message at the specified level.
	Write(level Level, format string, args ...any)

	// IsEnabled reports whether messages at the given level would be emitted.
	IsEnabled(level Level) bool
}

// Callback receives a trace message before any formatting has been applied.
//
// A callback owns formatting, emission, and any exit decision for the
// messages it receives; the logger's default sinks and exit threshold do
// not run for forwarded messages.
type Callback func(level Level, format string, args ...any)

// nopLogger discards every message.
type nopLogger struct{}

// NewNopLogger returns a logger that discards all messages. It stands in
// for a real logger when trace output is compiled out or unwanted.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Trace(string, ...any)        {}
func (nopLogger) Debug(string, ...any)        {}
func (nopLogger) Info(string, ...any)         {}
func (nopLogger) Warning(string, ...any)      {}
func (nopLogger) Error(string, ...any)        {}
func (nopLogger) Fatal(string, ...any)        {}
func (nopLogger) Write(Level, string, ...any) {}
func (nopLogger) IsEnabled(Level) bool        { return false }

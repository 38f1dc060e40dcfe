// Package gamekit provides leveled trace logging for game and multimedia
// applications, with pluggable sinks, a custom callback override, and a
// configurable exit-on-severity threshold.
//
// A logger emits messages at or above its minimum level to its sinks, then
// terminates the process when a message reaches its exit level:
//
//	log := gamekit.New(gamekit.WithConsole())
//	log.Info("window created: %dx%d", 800, 450)
//	log.Fatal("out of video memory") // exits with status 1
//
// Installing a callback transfers all emission and exit policy to it; see
// Logger.SetCallback.
package gamekit

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/gavral/gamekit/core"
	"github.com/gavral/gamekit/selflog"
)

// Logger dispatches formatted trace messages to sinks. It implements
// core.Logger.
type Logger struct {
	minimumLevel *LevelSwitch
	exitLevel    *LevelSwitch
	callback     atomic.Pointer[core.Callback]
	sinks        []core.Sink
	exit         func(code int)
}

// New creates a logger from the supplied options. With no options the
// logger has no sinks, a minimum level of Info, and an exit level of Error.
func New(opts ...Option) *Logger {
	c := &config{
		minimumLevel: core.InfoLevel,
		exitLevel:    core.ErrorLevel,
		exit:         os.Exit,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.err != nil && selflog.IsEnabled() {
		selflog.Printf("[logger] configuration error: %v", c.err)
	}

	l := &Logger{
		minimumLevel: NewLevelSwitch(c.minimumLevel),
		exitLevel:    NewLevelSwitch(c.exitLevel),
		sinks:        c.sinks,
		exit:         c.exit,
	}
	if c.callback != nil {
		l.callback.Store(&c.callback)
	}
	return l
}

// Trace writes a trace-level message.
func (l *Logger) Trace(format string, args ...any) {
	l.Write(core.TraceLevel, format, args...)
}

// Debug writes a debug-level message.
func (l *Logger) Debug(format string, args ...any) {
	l.Write(core.DebugLevel, format, args...)
}

// Info writes an info-level message.
func (l *Logger) Info(format string, args ...any) {
	l.Write(core.InfoLevel, format, args...)
}

// Warning writes a warning-level message.
func (l *Logger) Warning(format string, args ...any) {
	l.Write(core.WarningLevel, format, args...)
}

// Error writes an error-level message.
func (l *Logger) Error(format string, args ...any) {
	l.Write(core.ErrorLevel, format, args...)
}

// Fatal writes a fatal-level message.
func (l *Logger) Fatal(format string, args ...any) {
	l.Write(core.FatalLevel, format, args...)
}

// Write writes a message at the specified level.
//
// Messages below the minimum level are suppressed before any formatting
// or exit evaluation. If a callback is installed, the raw format string
// and arguments are forwarded to it verbatim and Write returns without
// consulting the sinks or the exit level; the callback owns all policy
// from that point. Otherwise the message is formatted once, emitted to
// every sink, and, if the level reaches the exit level, the process is
// terminated with status 1.
func (l *Logger) Write(level core.Level, format string, args ...any) {
	if level < l.minimumLevel.Level() {
		return
	}

	if cb := l.callback.Load(); cb != nil {
		(*cb)(level, format, args...)
		return
	}

	event := &core.Event{
		Timestamp: time.Now(),
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
	}

	for _, sink := range l.sinks {
		sink.Emit(event)
	}

	if level >= l.exitLevel.Level() {
		l.exit(1)
	}
}

// IsEnabled reports whether messages at the given level would be emitted.
func (l *Logger) IsEnabled(level core.Level) bool {
	return level >= l.minimumLevel.Level()
}

// MinimumLevel returns the switch controlling the emission threshold.
func (l *Logger) MinimumLevel() *LevelSwitch {
	return l.minimumLevel
}

// ExitLevel returns the switch controlling the exit threshold.
func (l *Logger) ExitLevel() *LevelSwitch {
	return l.exitLevel
}

// SetMinimumLevel updates the emission threshold. The value is stored
// unconditionally, without range validation.
func (l *Logger) SetMinimumLevel(level core.Level) {
	l.minimumLevel.SetLevel(level)
}

// SetExitLevel updates the exit threshold. The value is stored
// unconditionally, without range validation.
func (l *Logger) SetExitLevel(level core.Level) {
	l.exitLevel.SetLevel(level)
}

// SetCallback installs a custom callback, replacing any previous one.
// Passing nil removes the callback and restores default sink routing.
func (l *Logger) SetCallback(callback core.Callback) {
	if callback == nil {
		l.callback.Store(nil)
		return
	}
	l.callback.Store(&callback)
}

// Close closes every sink, returning the first error encountered.
func (l *Logger) Close() error {
	var firstErr error
	for _, sink := range l.sinks {
		if err := sink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NewNop returns a logger that discards all messages, standing in for a
// build with trace output disabled.
func NewNop() core.Logger {
	return core.NewNopLogger()
}

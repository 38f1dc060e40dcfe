package gamekit

import (
	"github.com/gavral/gamekit/core"
)

// config holds the configuration for building a logger.
type config struct {
	minimumLevel core.Level
	exitLevel    core.Level
	callback     core.Callback
	sinks        []core.Sink
	exit         func(code int)
	err          error // First error encountered during configuration
}

// Option is a functional option for configuring a logger.
type Option func(*config)

// WithMinimumLevel sets the minimum level a message must reach to be
// emitted. Messages below it are suppressed.
func WithMinimumLevel(level core.Level) Option {
	return func(c *config) {
		c.minimumLevel = level
	}
}

// WithExitLevel sets the level at or above which an emitted message
// terminates the process.
func WithExitLevel(level core.Level) Option {
	return func(c *config) {
		c.exitLevel = level
	}
}

// WithCallback routes messages to a custom callback instead of the
// logger's sinks. The callback receives the raw format string and
// arguments and owns all formatting, emission, and exit policy.
func WithCallback(callback core.Callback) Option {
	return func(c *config) {
		c.callback = callback
	}
}

// WithSink adds a sink to the logger.
func WithSink(sink core.Sink) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, sink)
	}
}

// WithExitFunc replaces the function invoked when a message reaches the
// exit level. The default is os.Exit. Intended for tests and for hosts
// that need to run shutdown work before terminating.
func WithExitFunc(exit func(code int)) Option {
	return func(c *config) {
		c.exit = exit
	}
}

package gamekit

import (
	"io"

	"github.com/gavral/gamekit/sinks"
)

// Convenience options for common configurations

// WithConsole adds a console sink writing to stdout.
func WithConsole() Option {
	return WithSink(sinks.NewConsoleSink())
}

// WithConsoleWriter adds a console sink with a custom writer.
func WithConsoleWriter(w io.Writer) Option {
	return WithSink(sinks.NewConsoleSinkWithWriter(w))
}

// WithFile adds a file sink.
func WithFile(path string) Option {
	return func(c *config) {
		if c.err != nil {
			return
		}
		sink, err := sinks.NewFileSink(path)
		if err != nil {
			c.err = err
			return
		}
		c.sinks = append(c.sinks, sink)
	}
}

// WithMemorySink adds the given memory sink, typically for tests that
// assert on emitted events.
func WithMemorySink(sink *sinks.MemorySink) Option {
	return WithSink(sink)
}

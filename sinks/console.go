package sinks

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gavral/gamekit/core"
	"github.com/gavral/gamekit/selflog"
)

// ConsoleSink writes trace events to the console, one line per event,
// prefixed with the event's severity.
type ConsoleSink struct {
	output io.Writer
	mu     sync.Mutex
}

// NewConsoleSink creates a new console sink that writes to stdout.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{output: os.Stdout}
}

// NewConsoleSinkWithWriter creates a new console sink with a custom writer.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	return &ConsoleSink{output: w}
}

// Emit writes the trace event to the console.
func (cs *ConsoleSink) Emit(event *core.Event) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	var sb strings.Builder
	sb.Grow(len(levelPrefix(event.Level)) + len(event.Message) + 1)
	sb.WriteString(levelPrefix(event.Level))
	sb.WriteString(event.Message)
	sb.WriteByte('\n')

	if _, err := io.WriteString(cs.output, sb.String()); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] write failed: %v", err)
		}
	}
}

// Close releases any resources held by the sink.
func (cs *ConsoleSink) Close() error {
	// Nothing to close for console sink
	return nil
}

// levelPrefix returns the line prefix for a severity level.
func levelPrefix(level core.Level) string {
	switch level {
	case core.TraceLevel:
		return "TRACE: "
	case core.DebugLevel:
		return "DEBUG: "
	case core.InfoLevel:
		return "INFO: "
	case core.WarningLevel:
		return "WARNING: "
	case core.ErrorLevel:
		return "ERROR: "
	case core.FatalLevel:
		return "FATAL: "
	default:
		return ""
	}
}

package sinks

import (
	"github.com/gavral/gamekit/core"
)

// CallbackSink forwards events to a user-supplied callback as an ordinary
// sink. Unlike a callback installed with Logger.SetCallback, a CallbackSink
// participates in the normal emission path, so the logger's exit threshold
// still applies after it runs. The callback receives the already-formatted
// message with no remaining arguments.
type CallbackSink struct {
	fn core.Callback
}

// NewCallbackSink creates a sink wrapping the given callback.
func NewCallbackSink(fn core.Callback) *CallbackSink {
	return &CallbackSink{fn: fn}
}

// Emit forwards the event to the callback.
func (s *CallbackSink) Emit(event *core.Event) {
	s.fn(event.Level, event.Message)
}

// Close releases any resources held by the sink.
func (s *CallbackSink) Close() error {
	return nil
}

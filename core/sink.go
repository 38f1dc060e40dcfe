package core

// Sink outputs trace events to a destination.
type Sink interface {
	// Emit writes the trace event to the sink's destination.
	Emit(event *Event)

	// Close releases any resources held by the sink.
	Close() error
}

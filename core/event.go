package core

import "time"

// Event represents a single trace message after formatting.
type Event struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Level is the severity of the event.
	Level Level

	// Message is the fully formatted message text, without level prefix
	// or trailing newline.
	Message string
}

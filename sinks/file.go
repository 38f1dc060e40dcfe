package sinks

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gavral/gamekit/core"
	"github.com/gavral/gamekit/selflog"
)

// FileSink writes trace events to a file, one prefixed line per event.
type FileSink struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	isOpen bool
}

// NewFileSink creates a new file sink, opening the file in append mode
// and creating parent directories as needed.
func NewFileSink(path string) (*FileSink, error) {
	fs := &FileSink{path: path}

	if err := fs.open(); err != nil {
		return nil, err
	}

	return fs, nil
}

// Emit writes the trace event to the file.
func (fs *FileSink) Emit(event *core.Event) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return
	}

	line := levelPrefix(event.Level) + event.Message + "\n"
	if _, err := fs.file.WriteString(line); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[file] write failed: %v (path=%s)", err, fs.path)
		}
	}
}

// Close flushes and closes the file.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return nil
	}

	fs.isOpen = false

	// Sync to ensure all data is written
	if err := fs.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}

	if err := fs.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}

	return nil
}

// open creates or opens the log file.
func (fs *FileSink) open() error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	fs.file = file
	fs.isOpen = true
	return nil
}

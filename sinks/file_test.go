package sinks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gavral/gamekit/core"
)

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")

	sink, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("failed to create file sink: %v", err)
	}

	sink.Emit(&core.Event{Level: core.InfoLevel, Message: "engine started"})
	sink.Emit(&core.Event{Level: core.WarningLevel, Message: "vsync unavailable"})

	if err := sink.Close(); err != nil {
		t.Fatalf("failed to close file sink: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	want := "INFO: engine started\nWARNING: vsync unavailable\n"
	if string(content) != want {
		t.Errorf("got %q, want %q", content, want)
	}
}

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")

	for i := 0; i < 2; i++ {
		sink, err := NewFileSink(path)
		if err != nil {
			t.Fatalf("failed to create file sink: %v", err)
		}
		sink.Emit(&core.Event{Level: core.InfoLevel, Message: "run"})
		if err := sink.Close(); err != nil {
			t.Fatalf("failed to close file sink: %v", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if string(content) != "INFO: run\nINFO: run\n" {
		t.Errorf("expected appended output, got %q", content)
	}
}

func TestFileSinkEmitAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")

	sink, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("failed to create file sink: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("failed to close file sink: %v", err)
	}

	// Must be a silent no-op
	sink.Emit(&core.Event{Level: core.InfoLevel, Message: "dropped"})

	if err := sink.Close(); err != nil {
		t.Errorf("second close should be a no-op, got %v", err)
	}
}

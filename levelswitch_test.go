package gamekit

import (
	"sync"
	"testing"

	"github.com/gavral/gamekit/core"
)

func TestNewLevelSwitch(t *testing.T) {
	testCases := []struct {
		name         string
		initialLevel core.Level
	}{
		{"Trace", core.TraceLevel},
		{"Debug", core.DebugLevel},
		{"Info", core.InfoLevel},
		{"Warning", core.WarningLevel},
		{"Error", core.ErrorLevel},
		{"Fatal", core.FatalLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ls := NewLevelSwitch(tc.initialLevel)
			if ls.Level() != tc.initialLevel {
				t.Errorf("Expected initial level %v, got %v", tc.initialLevel, ls.Level())
			}
		})
	}
}

func TestLevelSwitch_SetLevelAndGetLevel(t *testing.T) {
	ls := NewLevelSwitch(core.InfoLevel)

	levels := []core.Level{
		core.TraceLevel,
		core.DebugLevel,
		core.InfoLevel,
		core.WarningLevel,
		core.ErrorLevel,
		core.FatalLevel,
	}

	for _, level := range levels {
		ls.SetLevel(level)
		if ls.Level() != level {
			t.Errorf("Expected level %v, got %v", level, ls.Level())
		}
	}

	// Values outside the severity domain are stored as-is
	ls.SetLevel(core.FatalLevel + 5)
	if ls.Level() != core.FatalLevel+5 {
		t.Errorf("Expected out-of-domain level to be stored unchecked, got %v", ls.Level())
	}
}

func TestLevelSwitch_IsEnabled(t *testing.T) {
	ls := NewLevelSwitch(core.InfoLevel)

	testCases := []struct {
		testLevel core.Level
		expected  bool
	}{
		{core.TraceLevel, false},
		{core.DebugLevel, false},
		{core.InfoLevel, true},
		{core.WarningLevel, true},
		{core.ErrorLevel, true},
		{core.FatalLevel, true},
	}

	for _, tc := range testCases {
		if got := ls.IsEnabled(tc.testLevel); got != tc.expected {
			t.Errorf("IsEnabled(%v) = %v, want %v", tc.testLevel, got, tc.expected)
		}
	}
}

func TestLevelSwitch_FluentSetters(t *testing.T) {
	ls := NewLevelSwitch(core.InfoLevel)

	if ls.Trace().Level() != core.TraceLevel {
		t.Error("Trace() should set TraceLevel")
	}
	if ls.Debug().Level() != core.DebugLevel {
		t.Error("Debug() should set DebugLevel")
	}
	if ls.Info().Level() != core.InfoLevel {
		t.Error("Info() should set InfoLevel")
	}
	if ls.Warning().Level() != core.WarningLevel {
		t.Error("Warning() should set WarningLevel")
	}
	if ls.Error().Level() != core.ErrorLevel {
		t.Error("Error() should set ErrorLevel")
	}
	if ls.Fatal().Level() != core.FatalLevel {
		t.Error("Fatal() should set FatalLevel")
	}
}

func TestLevelSwitch_ConcurrentAccess(t *testing.T) {
	ls := NewLevelSwitch(core.InfoLevel)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(level core.Level) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				ls.SetLevel(level)
			}
		}(core.Level(i % 6))
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = ls.IsEnabled(core.WarningLevel)
			}
		}()
	}
	wg.Wait()

	if level := ls.Level(); level < core.TraceLevel || level > core.FatalLevel {
		t.Errorf("final level %v outside written range", level)
	}
}

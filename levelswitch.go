package gamekit

import (
	"sync/atomic"

	"github.com/gavral/gamekit/core"
)

// LevelSwitch provides thread-safe, runtime control of a severity threshold.
// The logger holds one switch for its minimum level and one for its exit
// level, so either can be adjusted without rebuilding the logger.
type LevelSwitch struct {
	// level is stored as int32 to enable atomic operations
	level int32
}

// NewLevelSwitch creates a new level switch with the specified initial level.
func NewLevelSwitch(initial core.Level) *LevelSwitch {
	ls := &LevelSwitch{}
	ls.SetLevel(initial)
	return ls
}

// Level returns the current threshold level.
func (ls *LevelSwitch) Level() core.Level {
	return core.Level(atomic.LoadInt32(&ls.level))
}

// SetLevel updates the threshold level.
// This operation is thread-safe and takes effect immediately. The value is
// not range-checked; callers may set any integral value, including one
// outside the defined severity domain.
func (ls *LevelSwitch) SetLevel(level core.Level) {
	atomic.StoreInt32(&ls.level, int32(level))
}

// IsEnabled returns true if the specified level would pass the threshold.
func (ls *LevelSwitch) IsEnabled(level core.Level) bool {
	return level >= ls.Level()
}

// Trace sets the threshold to Trace.
func (ls *LevelSwitch) Trace() *LevelSwitch {
	ls.SetLevel(core.TraceLevel)
	return ls
}

// Debug sets the threshold to Debug.
func (ls *LevelSwitch) Debug() *LevelSwitch {
	ls.SetLevel(core.DebugLevel)
	return ls
}

// Info sets the threshold to Info.
func (ls *LevelSwitch) Info() *LevelSwitch {
	ls.SetLevel(core.InfoLevel)
	return ls
}

// Warning sets the threshold to Warning.
func (ls *LevelSwitch) Warning() *LevelSwitch {
	ls.SetLevel(core.WarningLevel)
	return ls
}

// Error sets the threshold to Error.
func (ls *LevelSwitch) Error() *LevelSwitch {
	ls.SetLevel(core.ErrorLevel)
	return ls
}

// Fatal sets the threshold to Fatal.
func (ls *LevelSwitch) Fatal() *LevelSwitch {
	ls.SetLevel(core.FatalLevel)
	return ls
}

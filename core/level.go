package core

// Level specifies the severity of a trace message.
//
// Levels are ordered by increasing severity; the logger compares them
// numerically when applying its minimum and exit thresholds.
type Level int

const (
	// TraceLevel is the most detailed logging level.
	TraceLevel Level = iota

	// DebugLevel is for debugging information.
	DebugLevel

	// InfoLevel is for informational messages.
	InfoLevel

	// WarningLevel is for warnings.
	WarningLevel

	// ErrorLevel is for errors.
	ErrorLevel

	// FatalLevel is for fatal errors.
	FatalLevel
)

// String returns the conventional name of the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

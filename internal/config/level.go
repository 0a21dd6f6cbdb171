package config

// Level is the minimum severity that gets logged
type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug" // + connection diagnostics
	LevelTrace Level = "trace" // + every canvas event
)

// ParseLevel converts a string to Level, defaulting to LevelInfo
func ParseLevel(s string) Level {
	switch l := Level(s); l {
	case LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace:
		return l
	default:
		return LevelInfo
	}
}

// Valid reports whether l is a known level
func (l Level) Valid() bool {
	switch l {
	case LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace:
		return true
	}
	return false
}

// Verbosity returns the logr V-level enabled at l. Negative values mean
// only errors and warnings pass.
func (l Level) Verbosity() int {
	switch l {
	case LevelError:
		return -2
	case LevelWarn:
		return -1
	case LevelDebug:
		return 1
	case LevelTrace:
		return 2
	default:
		return 0
	}
}

// Allows returns true if messages at the required level are logged at l
func (l Level) Allows(required Level) bool {
	return l.Verbosity() >= required.Verbosity()
}

// Format selects the log output encoding
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Valid reports whether f is a known format
func (f Format) Valid() bool {
	return f == FormatConsole || f == FormatJSON
}

package types

import "time"

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "?"
	}
}

// LogEntry is one record in the bounded diagnostic ring the UI renders.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
}

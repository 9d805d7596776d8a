package types

// Logger is the four-severity sink directives report through.
// Messages are plain formatted strings.
type Logger interface {
	LowInfo(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// LogLevel names one of the Logger severities
type LogLevel string

const (
	LevelLowInfo LogLevel = "lowinfo"
	LevelInfo    LogLevel = "info"
	LevelWarn    LogLevel = "warn"
	LevelError   LogLevel = "error"
)

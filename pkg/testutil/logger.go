package testutil

import (
	"sync"

	"github.com/arthur-debert/dotapt/pkg/types"
)

// LogEntry is one recorded log call
type LogEntry struct {
	Level   types.LogLevel
	Message string
}

// RecordingLogger captures directive log calls in order
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewRecordingLogger creates an empty recording logger
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(level types.LogLevel, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: msg})
}

func (l *RecordingLogger) LowInfo(msg string) { l.record(types.LevelLowInfo, msg) }
func (l *RecordingLogger) Info(msg string)    { l.record(types.LevelInfo, msg) }
func (l *RecordingLogger) Warn(msg string)    { l.record(types.LevelWarn, msg) }
func (l *RecordingLogger) Error(msg string)   { l.record(types.LevelError, msg) }

// Entries returns every recorded call
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the messages logged at level, in order
func (l *RecordingLogger) Messages(level types.LogLevel) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Has reports whether msg was logged at level
func (l *RecordingLogger) Has(level types.LogLevel, msg string) bool {
	for _, m := range l.Messages(level) {
		if m == msg {
			return true
		}
	}
	return false
}

var _ types.Logger = (*RecordingLogger)(nil)

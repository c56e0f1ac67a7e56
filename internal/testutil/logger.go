package testutil

import (
	"fmt"
	"sync"
)

// Logger is a domain.Logger that records messages for assertions.
type Logger struct {
	mu      sync.Mutex
	entries []string
}

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Info(msg string, fields ...interface{})  { l.record("INFO", msg) }
func (l *Logger) Debug(msg string, fields ...interface{}) { l.record("DEBUG", msg) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.record("WARN", msg) }

func (l *Logger) Error(msg string, err error, fields ...interface{}) {
	l.record("ERROR", fmt.Sprintf("%s: %v", msg, err))
}

// Entries returns a copy of everything logged so far.
func (l *Logger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Logger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+" "+msg)
}

package testing

import (
	"fmt"
	"strings"
	"sync"
)

// CaptureLogger records every message passed to it, prefixed with its level.
// Thread-safe; pgx calls notice handlers from the connection's goroutine.
type CaptureLogger struct {
	mu       sync.Mutex
	messages []string
}

// NewCaptureLogger creates an empty CaptureLogger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{}
}

func (l *CaptureLogger) Verbose(format string, args ...interface{}) {
	l.record("VERBOSE", format, args...)
}

func (l *CaptureLogger) Info(format string, args ...interface{}) {
	l.record("INFO", format, args...)
}

func (l *CaptureLogger) Error(format string, args ...interface{}) {
	l.record("ERROR", format, args...)
}

func (l *CaptureLogger) record(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, "["+level+"] "+fmt.Sprintf(format, args...))
}

// Messages returns a copy of the recorded messages in order.
func (l *CaptureLogger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}

// Contains reports whether any recorded message contains substr.
func (l *CaptureLogger) Contains(substr string) bool {
	for _, msg := range l.Messages() {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

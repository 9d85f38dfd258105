package resolver

import (
	"fmt"
	"sync"
)

// recordingLogger keeps verbose messages for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func newRecordingLogger() *recordingLogger { return &recordingLogger{} }

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{})  {}
func (l *recordingLogger) Error(format string, args ...interface{}) {}

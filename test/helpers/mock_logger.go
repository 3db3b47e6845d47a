package helpers

import "sync"

// LogEntry is one captured log call
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// CapturingLogger records every log call for assertions
type CapturingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Log implements the application Logger interface
func (l *CapturingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// Entries returns a copy of the captured entries
func (l *CapturingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// HasMessage reports whether any entry carries message
func (l *CapturingLogger) HasMessage(message string) bool {
	for _, e := range l.Entries() {
		if e.Message == message {
			return true
		}
	}
	return false
}

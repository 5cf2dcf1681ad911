package persontest

import (
	"sync"
	"testing"

	person "github.com/fluentkit/person-go"
)

// ValidPrimitive returns a record that passes every validation rule.
func ValidPrimitive() person.Primitive {
	return person.Primitive{Name: "Ada Lovelace", Age: 36}
}

// InvalidPrimitive returns a record that fails every validation rule.
func InvalidPrimitive() person.Primitive {
	return person.Primitive{Name: "   ", Age: -1}
}

// Valid builds the canned valid person, failing the test on error.
func Valid(t *testing.T) person.Person {
	t.Helper()
	p, err := person.FromPrimitive(ValidPrimitive()).Build()
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	return p
}

// Build builds a person from the given values, failing the test on error.
// Use it when a test needs a valid Person and the construction itself is not
// what is under test.
func Build(t *testing.T, name string, age int) person.Person {
	t.Helper()
	p, err := person.New(name, age).Build()
	if err != nil {
		t.Fatalf("building %q/%d: %v", name, age, err)
	}
	return p
}

// LogEntry is one captured structured log call.
type LogEntry struct {
	Level string
	Msg   string
	Args  []any
}

// RecordingLogger is a StructuredLogger that captures every call.
// It is safe for concurrent use.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Msg: msg, Args: args})
}

// Debug implements person.StructuredLogger.
func (l *RecordingLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg, args) }

// Info implements person.StructuredLogger.
func (l *RecordingLogger) Info(msg string, args ...any) { l.record("INFO", msg, args) }

// Warn implements person.StructuredLogger.
func (l *RecordingLogger) Warn(msg string, args ...any) { l.record("WARN", msg, args) }

// Error implements person.StructuredLogger.
func (l *RecordingLogger) Error(msg string, args ...any) { l.record("ERROR", msg, args) }

// Entries returns a copy of all captured entries.
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count returns the number of entries captured at the given level.
func (l *RecordingLogger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Reset discards all captured entries.
func (l *RecordingLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Ensure RecordingLogger implements the logging interface.
var _ person.StructuredLogger = (*RecordingLogger)(nil)

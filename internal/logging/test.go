package logging

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Overruler/gs-collections/types"
)

// Entry is one message captured by a TestLogger.
type Entry struct {
	Level         string
	Msg           string
	KeysAndValues []any
}

// TestLogger implements types.Logger on top of testing.T and keeps every
// message so tests can assert on what was logged. It is safe for concurrent use.
type TestLogger struct {
	t *testing.T

	mu      sync.Mutex
	entries []Entry
}

var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a logger that writes through t.Logf.
//
// Example:
//
//	logger := logging.NewTest(t)
//	engine, err := parallel.NewEngine(parallel.TestConfig(), parallel.WithLogger(logger))
func NewTest(t *testing.T) *TestLogger {
	return &TestLogger{t: t}
}

func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.log("DEBUG", msg, keysAndValues)
}

func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.log("INFO", msg, keysAndValues)
}

func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.log("WARN", msg, keysAndValues)
}

func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.log("ERROR", msg, keysAndValues)
}

// Fatal logs the message and fails the test immediately.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.record("FATAL", msg, keysAndValues)
	l.t.Fatalf("FATAL: %s %s", msg, formatKeyValues(keysAndValues))
}

// Entries returns a copy of the captured messages.
func (l *TestLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)

	return out
}

// Messages returns the captured messages logged at level.
func (l *TestLogger) Messages(level string) []string {
	var msgs []string
	for _, e := range l.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}

	return msgs
}

func (l *TestLogger) log(level, msg string, keysAndValues []any) {
	l.record(level, msg, keysAndValues)
	l.t.Logf("%s: %s %s", level, msg, formatKeyValues(keysAndValues))
}

func (l *TestLogger) record(level, msg string, keysAndValues []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{Level: level, Msg: msg, KeysAndValues: keysAndValues})
}

func formatKeyValues(keysAndValues []any) string {
	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, "%v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, "%v=<missing>", keysAndValues[i])
		}
	}

	return b.String()
}

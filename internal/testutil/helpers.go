// Package testutil holds in-memory stand-ins for the repositories and
// adapters so services and handlers can be exercised without MongoDB.
package testutil

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// LogEntry is one captured log call.
type LogEntry struct {
	Level  string
	Msg    string
	Fields map[string]interface{}
}

// Logger records every call for assertions.
type Logger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

func (l *Logger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Msg: msg, Fields: fields})
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *Logger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *Logger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *Logger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

// Count returns how many entries were logged at level.
func (l *Logger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

type Metrics struct {
	mu    sync.Mutex
	Calls int
}

func (m *Metrics) RecordMetrics(c *gin.Context, start time.Time) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
}

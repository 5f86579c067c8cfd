// File: logging/logging.go
//
// Package logging provides the log-sink collaborator for the transport
// core. A Logger fans messages out to registered sinks; the core only
// reports error conditions through it, never routine success paths.

package logging

import "sync"

// Level classifies the severity of a log message.
type Level int32

const (
	LevelDebug Level = iota
	LevelWarning
	LevelError
)

// String returns a short uppercase tag for the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "?"
	}
}

// Area identifies the component a message originates from.
type Area int

const (
	AreaConnection Area = iota
	AreaResolver
	AreaPoll
)

// String returns a short lowercase tag for the area.
func (a Area) String() string {
	switch a {
	case AreaConnection:
		return "connection"
	case AreaResolver:
		return "resolver"
	case AreaPoll:
		return "poll"
	default:
		return "?"
	}
}

// LogSink receives formatted log messages. Implementations must be safe
// for concurrent use.
type LogSink interface {
	Log(level Level, area Area, message string)
}

// Logger fans messages out to registered sinks. The zero value and a nil
// *Logger are both usable no-op loggers.
type Logger struct {
	mu    sync.RWMutex
	sinks []LogSink
}

// NewLogger returns a Logger with no sinks attached.
func NewLogger() *Logger {
	return &Logger{}
}

// AddSink registers a sink with the logger.
func (l *Logger) AddSink(sink LogSink) {
	if l == nil || sink == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, sink)
}

// Debug reports a debug-level message.
func (l *Logger) Debug(area Area, message string) {
	l.log(LevelDebug, area, message)
}

// Warn reports a warning-level message.
func (l *Logger) Warn(area Area, message string) {
	l.log(LevelWarning, area, message)
}

// Err reports an error-level message.
func (l *Logger) Err(area Area, message string) {
	l.log(LevelError, area, message)
}

func (l *Logger) log(level Level, area Area, message string) {
	if l == nil {
		return
	}
	l.mu.RLock()
	sinks := l.sinks
	l.mu.RUnlock()
	for _, sink := range sinks {
		sink.Log(level, area, message)
	}
}

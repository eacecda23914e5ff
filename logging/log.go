// Package logging is the diagnostic surface of the mem library: leveled,
// source-located events are fanned out to registered callbacks and then
// to a swappable default logger. The core uses it exclusively to surface
// contract violations before halting.
package logging

import (
	"fmt"
	"log"
	"runtime"
)

// Log levels, most severe first.
const (
	// LevelFatal reports an unrecoverable contract violation.
	LevelFatal = iota
	// LevelError .
	LevelError
	// LevelWarn .
	LevelWarn
	// LevelInfo is the default logger's priority.
	LevelInfo
	// LevelDebug logs are usually disabled in production.
	LevelDebug
	// LevelTrace .
	LevelTrace
)

// Event is a single diagnostic record.
type Event struct {
	Level   int
	File    string
	Line    int
	Message string
}

// Callback receives every event, regardless of the default logger's
// level. Callbacks run synchronously on the goroutine that produced the
// event.
type Callback func(Event)

var callbacks []Callback

// RegisterCallback subscribes cb to all subsequent events. Registration
// is not synchronized; register during startup.
func RegisterCallback(cb Callback) {
	callbacks = append(callbacks, cb)
}

// Logger defines the sink behind the package-level helpers.
type Logger interface {
	SetLevel(lvl int)
	Fatal(format string, v ...any)
	Error(format string, v ...any)
	Warn(format string, v ...any)
	Info(format string, v ...any)
	Debug(format string, v ...any)
	Trace(format string, v ...any)
}

// DefaultLogger receives events after the registered callbacks. Set it to
// nil to silence default output while keeping callbacks.
var DefaultLogger Logger = &logger{level: LevelInfo}

// SetLogger replaces the default logger.
func SetLogger(l Logger) {
	DefaultLogger = l
}

// SetLevel sets the default logger's priority.
func SetLevel(lvl int) {
	if DefaultLogger != nil {
		DefaultLogger.SetLevel(lvl)
	}
}

// logger implements Logger on top of the standard log package.
type logger struct {
	level int
}

func (l *logger) SetLevel(lvl int) {
	if lvl < LevelFatal || lvl > LevelTrace {
		log.Printf("invalid log level: %v", lvl)
		return
	}
	l.level = lvl
}

func (l *logger) logf(lvl int, tag, format string, v ...any) {
	if lvl <= l.level {
		log.Printf(tag+format, v...)
	}
}

func (l *logger) Fatal(format string, v ...any) { l.logf(LevelFatal, "[FTL] ", format, v...) }
func (l *logger) Error(format string, v ...any) { l.logf(LevelError, "[ERR] ", format, v...) }
func (l *logger) Warn(format string, v ...any)  { l.logf(LevelWarn, "[WRN] ", format, v...) }
func (l *logger) Info(format string, v ...any)  { l.logf(LevelInfo, "[INF] ", format, v...) }
func (l *logger) Debug(format string, v ...any) { l.logf(LevelDebug, "[DBG] ", format, v...) }
func (l *logger) Trace(format string, v ...any) { l.logf(LevelTrace, "[TRC] ", format, v...) }

// Output emits an event at the given level, recording the source location
// calldepth frames up the stack (1 is the caller of Output).
func Output(calldepth, level int, format string, v ...any) {
	if len(callbacks) > 0 {
		ev := Event{Level: level, Message: fmt.Sprintf(format, v...)}
		if _, file, line, ok := runtime.Caller(calldepth); ok {
			ev.File, ev.Line = file, line
		}
		for _, cb := range callbacks {
			cb(ev)
		}
	}
	if DefaultLogger == nil {
		return
	}
	switch level {
	case LevelFatal:
		DefaultLogger.Fatal(format, v...)
	case LevelError:
		DefaultLogger.Error(format, v...)
	case LevelWarn:
		DefaultLogger.Warn(format, v...)
	case LevelInfo:
		DefaultLogger.Info(format, v...)
	case LevelDebug:
		DefaultLogger.Debug(format, v...)
	case LevelTrace:
		DefaultLogger.Trace(format, v...)
	}
}

// Fatalf logs a message at LevelFatal.
func Fatalf(format string, v ...any) {
	Output(2, LevelFatal, format, v...)
}

// Errorf logs a message at LevelError.
func Errorf(format string, v ...any) {
	Output(2, LevelError, format, v...)
}

// Warnf logs a message at LevelWarn.
func Warnf(format string, v ...any) {
	Output(2, LevelWarn, format, v...)
}

// Infof logs a message at LevelInfo.
func Infof(format string, v ...any) {
	Output(2, LevelInfo, format, v...)
}

// Debugf logs a message at LevelDebug.
func Debugf(format string, v ...any) {
	Output(2, LevelDebug, format, v...)
}

// Tracef logs a message at LevelTrace.
func Tracef(format string, v ...any) {
	Output(2, LevelTrace, format, v...)
}

package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel orders log messages by severity.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the lowercase level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLogLevel maps a case-insensitive level name to a LogLevel. Unknown
// names resolve to info.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger is the leveled logging surface used by the app and the commands.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
	Fatalf(format string, v ...any)
}

// StdLogger writes leveled messages through the standard library logger.
type StdLogger struct {
	level  LogLevel
	prefix string
	out    *log.Logger
}

// NewLogger returns a StdLogger writing to stderr at the given level.
func NewLogger(prefix string, level string) *StdLogger {
	return NewLoggerTo(os.Stderr, prefix, level)
}

// NewLoggerTo is NewLogger with an explicit destination.
func NewLoggerTo(w io.Writer, prefix string, level string) *StdLogger {
	return &StdLogger{
		level:  ParseLogLevel(level),
		prefix: prefix,
		out:    log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
}

// Level reports the minimum level that is written.
func (l *StdLogger) Level() LogLevel { return l.level }

func (l *StdLogger) logf(level LogLevel, format string, v ...any) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	if l.prefix != "" {
		l.out.Printf("[%s] %s: %s", l.prefix, strings.ToUpper(level.String()), msg)
		return
	}
	l.out.Printf("%s: %s", strings.ToUpper(level.String()), msg)
}

func (l *StdLogger) Debugf(format string, v ...any) { l.logf(LogLevelDebug, format, v...) }
func (l *StdLogger) Infof(format string, v ...any)  { l.logf(LogLevelInfo, format, v...) }
func (l *StdLogger) Warnf(format string, v ...any)  { l.logf(LogLevelWarn, format, v...) }
func (l *StdLogger) Errorf(format string, v ...any) { l.logf(LogLevelError, format, v...) }

// Fatalf logs at error level regardless of the configured level and exits.
func (l *StdLogger) Fatalf(format string, v ...any) {
	l.out.Fatalf("FATAL: "+format, v...)
}

// NopLogger discards everything. Fatalf still exits.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
func (NopLogger) Fatalf(format string, v ...any) {
	log.Fatalf(format, v...)
}

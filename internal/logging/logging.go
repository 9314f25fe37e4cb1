// Package logging provides a simple leveled logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a simple leveled logger.
type Logger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
}

// New creates a new logger.
func New(level Level) *Logger {
	return &Logger{
		level:  level,
		output: os.Stderr,
	}
}

// SetOutput sets the log output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("%s [%s] %s\n", timestamp, level.String(), msg)

	_, _ = l.output.Write([]byte(line))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return &Logger{
		level:  LevelError + 1, // Higher than any level
		output: io.Discard,
	}
}

// EnvLogFile names an optional log file destination. The TUI always
// wants one: stdout and stderr belong to the terminal while bubbletea
// runs.
const EnvLogFile = "LS_SATURN_LOG"

// NewFromEnv creates a logger that honors EnvLogFile: when set, output
// appends to that file instead of stderr. The returned close function
// is a no-op when no file was opened.
func NewFromEnv(level Level) (*Logger, func() error) {
	l := New(level)
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return l, func() error { return nil }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		l.Error("open log file %s: %v", path, err)
		return l, func() error { return nil }
	}
	l.SetOutput(f)
	return l, f.Close
}

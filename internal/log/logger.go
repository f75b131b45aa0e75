// Package log is the leveled logger used across conceptgraph. It wraps
// kataras/golog behind a small interface so packages can take a Logger and
// tests can pass Nop().
package log

import (
	"io"
	"strings"

	"github.com/kataras/golog"
)

// Level represents logging severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// Logger is implemented by GologLogger and by test doubles.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// ParseLevel maps a config string onto a Level. Unknown values give LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "disable", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelNone:
		return "disable"
	default:
		return "info"
	}
}

// GologLogger implements Logger using kataras/golog
type GologLogger struct {
	logger *golog.Logger
	level  Level
}

var _ Logger = (*GologLogger)(nil)

// New creates a golog-backed logger with the "[conceptgraph] " prefix.
func New(level Level) *GologLogger {
	g := golog.New()
	g.SetPrefix("[conceptgraph] ")
	l := NewGologLogger(g)
	l.SetLevel(level)
	return l
}

// NewWriter is New with a custom output.
func NewWriter(out io.Writer, level Level) *GologLogger {
	l := New(level)
	l.logger.SetOutput(out)
	return l
}

// NewGologLogger wraps an existing golog.Logger at LevelInfo.
func NewGologLogger(logger *golog.Logger) *GologLogger {
	return &GologLogger{
		logger: logger,
		level:  LevelInfo,
	}
}

// Nop returns a logger that discards everything.
func Nop() *GologLogger {
	return NewWriter(io.Discard, LevelNone)
}

func (l *GologLogger) Debug(format string, v ...any) {
	if l.level <= LevelDebug {
		l.logger.Debugf(format, v...)
	}
}

func (l *GologLogger) Info(format string, v ...any) {
	if l.level <= LevelInfo {
		l.logger.Infof(format, v...)
	}
}

func (l *GologLogger) Warn(format string, v ...any) {
	if l.level <= LevelWarn {
		l.logger.Warnf(format, v...)
	}
}

func (l *GologLogger) Error(format string, v ...any) {
	if l.level <= LevelError {
		l.logger.Errorf(format, v...)
	}
}

// SetLevel sets the level on both the wrapper and the underlying golog logger.
func (l *GologLogger) SetLevel(level Level) {
	l.level = level
	l.logger.SetLevel(level.String())
}

// GetLevel returns the current log level
func (l *GologLogger) GetLevel() Level {
	return l.level
}

// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.trai.ch/zerr"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// New creates a Logger writing human-readable records to stderr at info level.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to w at info level.
func NewWithWriter(w io.Writer) *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return &Logger{
		logger: newSlogger(w, level),
		level:  level,
	}
}

func newSlogger(w io.Writer, level *slog.LevelVar) *slog.Logger {
	// Text handler on stderr keeps stdout free for the change report.
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel changes the minimum level of emitted records.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, zerr.With(zerr.Wrap(err, "invalid log level"), "level", name)
	}
	return level, nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.logger.Error("operation failed", "error", err)
}

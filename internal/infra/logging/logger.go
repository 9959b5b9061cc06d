// Package logging provides leveled, categorized logging for tasksplit.
// Entries are written as single lines to an io.Writer (stderr in the CLI).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/runoshun/tasksplit/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes formatted log entries at or above a minimum level.
// Fields are ordered to minimize memory padding.
type Logger struct {
	w     io.Writer
	now   func() time.Time
	mu    sync.Mutex
	level slog.Level
}

// New creates a new Logger writing to w.
// If w is nil, logging is disabled.
func New(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		w:     w,
		now:   time.Now,
		level: level,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// formatLog renders one log entry as a single line.
// Format: [2025-12-30 09:32:51] [INFO] [category] message
func formatLog(t time.Time, level slog.Level, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, category, msg string) {
	if l.w == nil {
		return // Logging disabled
	}

	if level < l.level {
		return // Skip if below minimum level
	}

	entry := formatLog(l.now(), level, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, entry)
}

// Info logs an info message.
func (l *Logger) Info(category, msg string) {
	l.log(slog.LevelInfo, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(category, msg string) {
	l.log(slog.LevelDebug, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, msg string) {
	l.log(slog.LevelWarn, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(category, msg string) {
	l.log(slog.LevelError, category, msg)
}

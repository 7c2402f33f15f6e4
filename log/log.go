// Package log provides structured logging for the evmlite interpreter.
// It wraps Go's log/slog with per-subsystem child loggers and a small
// helper for attaching opcode/pc diagnostic context, since most of this
// package's call sites are the dispatch loop reporting on an instruction.
package log

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with evmlite-specific context.
type Logger struct {
	inner *slog.Logger
}

// defaultLogger is the process-wide logger used by the package-level
// convenience functions.
var defaultLogger = New(slog.LevelInfo)

// New creates a Logger that writes JSON to stderr at the given level.
func New(level slog.Level) *Logger {
	return NewWithHandler(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler. This
// is useful for testing or for writing to a custom destination.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger.
func Default() *Logger { return defaultLogger }

// Module returns a child logger with an additional "module" attribute. This
// is the primary way a subsystem (interpreter, jumpdest, ...) obtains its
// own contextual logger.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// Opcode returns a child logger carrying the opcode and program-counter
// attributes the dispatch loop wants attached to every diagnostic line it
// emits about a given instruction.
func (l *Logger) Opcode(op fmt.Stringer, pc uint64) *Logger {
	return &Logger{inner: l.inner.With("opcode", op.String(), "pc", pc)}
}

func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// Module returns a child of the default logger for the named subsystem.
func Module(name string) *Logger { return defaultLogger.Module(name) }

// Debug, Info, Warn, and Error log on the default logger.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { defaultLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { defaultLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

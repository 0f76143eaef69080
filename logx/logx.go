package logx

import (
	"io"
	"log"
	"os"
)

// Logger prefixes every line with a level tag and delegates to a
// standard library *log.Logger for formatting and output.
type Logger struct {
	base *log.Logger
}

// New builds a Logger writing to w with the standard date/time prefix.
func New(w io.Writer) *Logger {
	return &Logger{base: log.New(w, "", log.LstdFlags)}
}

// Default returns a Logger writing to stderr, the common case for the
// cmd entry points.
func Default() *Logger {
	return New(os.Stderr)
}

// Info logs a normal-progress line.
func (l *Logger) Info(format string, args ...any) {
	l.base.Printf("INFO "+format, args...)
}

// Warn logs a recoverable-problem line.
func (l *Logger) Warn(format string, args ...any) {
	l.base.Printf("WARN "+format, args...)
}

// Package logger provides the named, colour prefixed loggers used across the services.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

const (
	levelInfoColor    = "\033[32m"
	levelWarningColor = "\033[33m"
	levelErrorColor   = "\033[31m"
	colorReset        = "\033[0m"
)

var (
	ErrEmptyName = errors.New("logger name is empty")
	ErrNoWriter  = errors.New("logger writer is nil")
)

// Logger is the logging surface components depend on.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// ColorLogger writes lines like "[NAME] [INFO] message" with ANSI colours.
type ColorLogger struct {
	prefix string
	l      *log.Logger
	mu     sync.Mutex
}

var _ Logger = &ColorLogger{}

// New creates a logger named name whose name tag is printed in color.
func New(name, color string, w io.Writer) (*ColorLogger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if w == nil {
		return nil, ErrNoWriter
	}

	return &ColorLogger{
		prefix: fmt.Sprintf("%s[%s]%s", color, name, colorReset),
		l:      log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (c *ColorLogger) Info(msg string) {
	c.print(levelInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (c *ColorLogger) Warning(msg string) {
	c.print(levelWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (c *ColorLogger) Error(msg string) {
	c.print(levelErrorColor, "ERROR", msg)
}

func (c *ColorLogger) print(color, level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.l.Printf("%s %s[%s]%s %s", c.prefix, color, level, colorReset, msg)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Info(string)    {}
func (Nop) Warning(string) {}
func (Nop) Error(string)   {}

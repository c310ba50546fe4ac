// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/envkit/internal/core/ports"
)

// messager is an error that reports its own message without the wrapped chain,
// as zerr.Error and domain.FatalError do.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	output   io.Writer
	jsonMode bool
}

// New creates a Logger writing pretty output to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, nil)),
		output: os.Stderr,
	}
}

// SetOutput redirects the logger, keeping the current JSON setting.
// A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler())
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.handler())
}

func (l *Logger) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(l.output, opts)
	}
	return NewPrettyHandler(l.output, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err. In pretty mode the error chain is printed one cause per line.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatChain(collectMessages(err)))
}

// collectMessages walks the error chain. Errors that know their own message
// contribute one entry each; the first plain error ends the walk.
func collectMessages(err error) []string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
		current = errors.Unwrap(current)
	}
	return messages
}

func formatChain(messages []string) string {
	var lines []string
	for i, msg := range messages {
		parts := strings.Split(msg, "\n")
		switch i {
		case 0:
			lines = append(lines, "Error: "+parts[0])
			for _, p := range parts[1:] {
				lines = append(lines, "       "+p)
			}
			continue
		case 1:
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, p := range parts[1:] {
			lines = append(lines, "      "+p)
		}
	}
	return strings.Join(lines, "\n")
}

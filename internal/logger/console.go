// Package logger provides the diagnostics logger for the error stream.
//
// Messages are written as "rgrep: <level>: <message>". The level tag is colorized
// when the destination is a terminal. Output is serialized with a mutex so a single
// logger can be shared freely.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelWarn int = iota
	levelError
)

// Prefix starts every diagnostic line.
const Prefix = "rgrep"

// ConsoleLogger writes leveled diagnostics to a writer.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: warn, error (case-insensitive). Anything else defaults to "warn".
// Color output follows AutoColor.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: AutoColor(writer),
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// AutoColor reports whether w should get color when none was requested
// explicitly. It requires a terminal and honors NO_COLOR and TERM=dumb.
func AutoColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(w)
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "warn" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "warn", "error":
		return normalized
	default:
		return "warn"
	}
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "error":
		return levelError
	default:
		return levelWarn
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// Warnf logs a diagnostic for a condition the run recovers from, such as a skipped file.
func (cl *ConsoleLogger) Warnf(format string, args ...interface{}) {
	cl.logWithLevel("warn", fmt.Sprintf(format, args...))
}

// Errorf logs a diagnostic for a condition that ends the run.
func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) {
	cl.logWithLevel("error", fmt.Sprintf(format, args...))
}

// logWithLevel logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(level) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	tag := level
	if cl.colorOutput {
		tag = cl.colorize(level)
	}

	fmt.Fprintf(cl.writer, "%s: %s: %s\n", Prefix, tag, message)
}

// colorize wraps the level tag in its ANSI color.
func (cl *ConsoleLogger) colorize(level string) string {
	var c *color.Color
	switch level {
	case "warn":
		c = color.New(color.FgYellow)
	case "error":
		c = color.New(color.FgRed, color.Bold)
	default:
		return level
	}
	c.EnableColor()
	return c.Sprint(level)
}

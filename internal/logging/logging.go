// Package logging constructs the console logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the default console logging options.
func DefaultOptions() Options {
	return Options{
		Level:           log.WarnLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "taskpad",
	}
}

// ParseLevel maps a config string to a log level. Unknown values keep
// the default warn level so a typo never silences or floods the log.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// New creates a logger writing to w with the given options.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// NewConsole creates a logger writing to stderr, keeping stdout free
// for the UI and for command output.
func NewConsole(opts Options) *log.Logger {
	return New(os.Stderr, opts)
}

// Discard returns a logger that drops everything; used in tests.
func Discard() *log.Logger {
	return New(io.Discard, DefaultOptions())
}

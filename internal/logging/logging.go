// Package logging builds the leveled console logger used by the sched
// commands. Diagnostics go here; user-facing results are printed directly.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the console logger.
type Options struct {
	Level           string
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Level:           "warn",
		ReportTimestamp: false,
		Prefix:          "sched",
	}
}

// New returns a text-formatted logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.WarnLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		l, err := log.ParseLevel(strings.ToLower(s))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

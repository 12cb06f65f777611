// Package logging builds the structured loggers handed to the game's components.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level        string // debug, info, warn, error
	Prefix       string
	ReportCaller bool
}

// DefaultOptions logs info and above with a timestamp.
func DefaultOptions() Options {
	return Options{
		Level:  "info",
		Prefix: "frogger 🐸",
	}
}

// New creates a logger writing to w. An empty or unknown level falls back to info.
func New(w io.Writer, opts Options) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    opts.ReportCaller,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          opts.Prefix,
	})
	l.SetLevel(ParseLevel(opts.Level))
	return l
}

// ParseLevel converts a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	if level == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Discard returns a logger that writes nowhere. Useful in tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Component returns a child logger tagged with the component name.
func Component(l *log.Logger, name string) *log.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With("component", name)
}

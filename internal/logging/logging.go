// Package logging builds zerolog loggers for picoedit hosts.
//
// Terminal hosts must not log to stdout or stderr while the program owns the
// screen, so File writes to a file instead and Nop is used when no file is
// configured.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// New returns a logger writing JSON lines to w at level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}
	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str("app", "picoedit").
		Logger()
}

// Console returns a human readable logger for non-interactive tools.
func Console(w io.Writer, level zerolog.Level) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}, level)
}

// File opens path for appending and returns a logger writing to it with a
// function that closes the file. An empty path yields a disabled logger.
func File(path string, debug bool) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // user-chosen log path
	if err != nil {
		return zerolog.Nop(), nil, errors.Errorf("opening log file: %w", err)
	}
	return New(f, Level(debug)), f.Close, nil
}

// Level maps the debug switch to a zerolog level.
func Level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger writes human-readable logs to w. Only warnings and above are
// shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

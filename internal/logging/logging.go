// Package logging provides structured logging setup for client-tracker.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the process logger writing to stdout.
// Dev mode uses human-readable console output; prod uses JSON.
func Setup(devMode bool, level string) zerolog.Logger {
	return New(os.Stdout, devMode, level)
}

// New builds a logger writing to w. An unknown level falls back to info,
// or debug in dev mode.
func New(w io.Writer, devMode bool, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
		if devMode {
			lvl = zerolog.DebugLevel
		}
	}

	if devMode {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

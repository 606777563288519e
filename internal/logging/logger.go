// Package logging provides structured logging for both the desktop app and the CLI.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Output modes
const (
	ModeCLI = "cli"
	ModeGUI = "gui"
)

// TimeFormat is the console timestamp layout
const TimeFormat = "15:04:05"

// New creates a console logger for the given mode. Both modes log to
// stderr; stdout carries command output only.
func New(mode string) zerolog.Logger {
	return NewWithMode(os.Stderr, mode)
}

// NewWithMode creates a console logger writing to w tagged with mode
func NewWithMode(w io.Writer, mode string) zerolog.Logger {
	return NewWithWriter(w).With().Str("mode", mode).Logger()
}

// NewWithWriter creates a console logger writing to w
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
	}).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel converts a level name to a zerolog level, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "verbose":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Package logging configures the zerolog logger shared by the drivers.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogLevel overrides the configured level (trace, debug, info, warn, error).
const EnvLogLevel = "TAPESTRY_LOG_LEVEL"

// New builds a console logger tagged with app, writing to stderr so terminal
// rendering on stdout stays clean, and installs it as the global logger.
func New(app string) zerolog.Logger {
	return NewWithWriter(app, os.Stderr)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(app string, w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel)))); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger writing to stderr so the value stream on
// stdout stays machine-readable.
//
// Level comes from LOG_LEVEL (debug|info|warn|error, default info);
// verbose forces debug regardless.
func New(verbose bool) zerolog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Adapter exposes a zerolog.Logger through the calculation.Logger
// interface.
type Adapter struct {
	L zerolog.Logger
}

func (a Adapter) Debugf(format string, args ...any) { a.L.Debug().Msgf(format, args...) }
func (a Adapter) Infof(format string, args ...any)  { a.L.Info().Msgf(format, args...) }
func (a Adapter) Warnf(format string, args ...any)  { a.L.Warn().Msgf(format, args...) }
func (a Adapter) Errorf(format string, args ...any) { a.L.Error().Msgf(format, args...) }

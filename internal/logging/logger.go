// Package logging builds the zerolog loggers used for diagnostics. Logs go
// to stderr so they never mix with the lint report on stdout.
package logging

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level or an unknown level is configured.
const DefaultLevel = zerolog.WarnLevel

// New creates a console logger writing to w at the given level. Every entry
// carries a run_id that identifies one invocation.
func New(level string, w io.Writer, color bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = DefaultLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// ValidLevel reports whether level is a zerolog level name.
func ValidLevel(level string) bool {
	_, err := zerolog.ParseLevel(level)
	return err == nil
}

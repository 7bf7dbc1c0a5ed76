// Package logger builds the zerolog logger used by the command-line tools.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the given level.
// An empty or unknown level falls back to info. Writes to w are
// serialized, so the logger may be shared across goroutines.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), TimeFormat: time.RFC3339, NoColor: true}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

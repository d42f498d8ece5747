package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the terminal's logger. It writes to out, never to the
// prompt stream, and tags every event with the application name.
func NewLogger(cfg LoggerConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
			NoColor:    true,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", "restaurant").
		Logger()
}

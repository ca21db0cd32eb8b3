package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"doctor-booking-server/internal/config"
)

// New builds the application logger. Development gets human-readable console
// output, everything else JSON lines on stdout.
func New(cfg *config.Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stdout)
}

func newWithWriter(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.IsDevelopment() {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "doctor-booking").
		Logger()
}

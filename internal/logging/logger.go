package logging

import (
	"io"
	"os"

	"patient-management-service/internal/config"

	"github.com/rs/zerolog"
)

// New builds the process logger. Release mode writes JSON lines, anything else
// gets the human readable console writer.
func New(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if !cfg.Server.IsRelease() {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "pms").Logger()
}

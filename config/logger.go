package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global zerolog logger from LOG_LEVEL and
// LOG_FORMAT. Defaults to JSON at info level; LOG_FORMAT=console gives
// human-readable output for local runs.
func SetupLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	if env := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	logger := zerolog.New(os.Stdout)
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log.Logger = logger.Level(level).With().Timestamp().Str("app", "nailstudio").Logger()
}

// pkg/logger/logger.go
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the service logger. Level comes from LOG_LEVEL (debug,
// info, warn, error); anything else falls back to info.
func New() zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Logger()
}

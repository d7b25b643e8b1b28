package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New logs to stderr so command output on stdout stays clean. Until the
// config is loaded the global level comes straight from LOG_LEVEL; SetLevel
// moves it once the config file has been read.
func New() zerolog.Logger {
	SetLevel(os.Getenv("LOG_LEVEL"))
	return NewWithWriter(os.Stderr, zerolog.LevelTraceValue)
}

func SetLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}

func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger.Level(ParseLevel(level))
}

func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

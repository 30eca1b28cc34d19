package logger

import (
	"io"
	"os"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"github.com/tjjh89017/codestore-go/internal/config"
)

var DefaultSet = wire.NewSet(
	NewLogger,
)

var LevelMap = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// Output is where log lines go. Stdout is left for command output.
var Output io.Writer = os.Stderr

func NewLogger(config *config.Config) *zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: Output}).With().Timestamp().Logger()

	if level, ok := LevelMap[config.Log.Level]; ok {
		logger = logger.Level(level)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	return &logger
}

package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var once sync.Once
var Log zerolog.Logger

func configure() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05.000",
	}
	Log = zerolog.New(output).With().Timestamp().Logger()
}

// GetConfigured configures the global logger with the given level. Only the
// first call wins; later calls return the existing logger.
func GetConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configure()
		zerolog.SetGlobalLevel(level)
	})
	return &Log
}

func Get() *zerolog.Logger {
	once.Do(configure)
	return &Log
}

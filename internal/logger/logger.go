package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/WanderingWalnut/HomeRun/config"
)

var log zerolog.Logger

func init() {
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configures the package logger from the app config. Development gets
// a human-readable console writer, everything else stays JSON.
func Init(cfg *config.Config) {
	level := zerolog.InfoLevel
	if cfg.App.Environment == "development" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.App.Environment == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log = zerolog.New(output).With().Timestamp().Logger()
		return
	}
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}

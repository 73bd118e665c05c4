// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level maps a -v count to a level: warn by default, then info, debug and
// trace.
func Level(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup points the global logger at a console writer on w. A configured level
// name is used when no -v flag was given.
func Setup(verbosity int, levelName string, w io.Writer) error {
	level := Level(verbosity)

	if verbosity == 0 && levelName != "" {
		parsed, err := zerolog.ParseLevel(levelName)
		if err != nil {
			return errors.Wrapf(err, "invalid log level %q", levelName)
		}

		level = parsed
	}

	zerolog.SetGlobalLevel(level)

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	if level <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("level", level.String()).Msg("logger initialized")

	return nil
}

// Component returns the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

package hlog

import (
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

var Logger logr.Logger

// Init builds the process logger from the verbosity flags. Quiet wins over
// verbose when both are set.
func Init(quiet bool, verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"

	zl := zerolog.New(os.Stderr)

	if IsTerminal() {
		zl = zl.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    !isColorTerminal(),
			TimeFormat: time.RFC3339,
		})
	}

	level := parseLogLevel(quiet, verbose)
	zerolog.SetGlobalLevel(level)
	zl = zl.Level(level).With().Timestamp().Logger()

	Logger = zerologr.New(&zl)
	Logger.V(1).Info("Initialized", "level", level.String())
}

func parseLogLevel(quiet bool, verbose bool) zerolog.Level {
	if quiet {
		return zerolog.WarnLevel
	}
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// GetLogger returns a logger named for the given package.
func GetLogger(packageName string) logr.Logger {
	return Logger.WithName(packageName)
}

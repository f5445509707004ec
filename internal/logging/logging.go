// Package logging builds the zap logger shared by the CLI and the packages it
// drives.
package logging

import (
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// Levels accepted by New.
var Levels = []string{"debug", "info", "warn", "error"}

// New returns a console logger writing to stderr at the given level.
func New(level string) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.Encoding = "console"
	config.Sampling = nil
	config.DisableStacktrace = true
	config.EncoderConfig.TimeKey = ""

	logger, err := config.Build()
	if err != nil {
		return nil, errors.Annotate(err, "building logger")
	}
	return logger, nil
}

func parseLevel(level string) (zap.AtomicLevel, error) {
	for _, l := range Levels {
		if l == level {
			return zap.ParseAtomicLevel(level)
		}
	}
	return zap.AtomicLevel{}, errors.NotValidf("log level %q (valid: %v)", level, Levels)
}

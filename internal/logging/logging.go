// Package logging configures the logrus logger shared by the CLI commands.
package logging

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/RoyCoates/EGM722Project/internal/config"
)

// New returns a logger writing to out with the configured format and level.
// An unknown level falls back to info with a warning.
func New(cfg config.LoggingConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to 'info'", cfg.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// ForRun tags every entry with a fresh run_id so the lines of one
// invocation can be grouped.
func ForRun(logger *logrus.Logger, command string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": command,
	})
}

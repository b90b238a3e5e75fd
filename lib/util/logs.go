package util

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// SetLogLevel sets the logger level from the LOG_LEVEL environment value.
// Unrecognized values fall back to info.
func SetLogLevel(logger *logrus.Logger, level string) {
	switch strings.ToLower(level) {
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Package logging configures the global structured logger.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. It is usable with defaults before
// Init runs, so library code and tests never see a nil logger.
var Log = logrus.New()

// Init configures Log from environment variables:
//   - LOG_LEVEL: logrus level name, default "info"
//   - LOG_FORMAT: "json" for machine-readable output, anything else gets
//     the text formatter
//
// Call once at startup.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Log.SetOutput(os.Stderr)
}

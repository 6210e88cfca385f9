// Package logger provides the application-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultFile is where logs go when LOG_FILE is unset. The terminal belongs
// to the renderer while the game runs, so logs never go to stdout.
const DefaultFile = "tilerogue.log"

// Log is the global logger. It is usable before Init, writing warnings and
// above to stderr.
var Log = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Init configures the global logger from the environment:
//   - LOG_LEVEL: logrus level name, default "info"
//   - LOG_FORMAT: "json" or "text", default "text"
//   - LOG_FILE: output path, default DefaultFile; "-" means stderr
//
// The returned closer releases the log file.
func Init() (io.Closer, error) {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	path := envOr("LOG_FILE", DefaultFile)
	if path == "-" {
		Log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	Log.SetOutput(f)
	return f, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

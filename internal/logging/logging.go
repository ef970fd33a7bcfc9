// Package logging configures the shared structured logger used across
// the compiler and its CLI.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text-formatted logger writing to w at level, falling
// back to stderr and Info level when either is left at zero value.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	if w == nil {
		w = os.Stderr
	}
	if level == 0 {
		level = logrus.InfoLevel
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

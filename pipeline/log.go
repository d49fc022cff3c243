// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

var log = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return l
}

// Logger returns the package logger.
func Logger() *logrus.Logger {
	return log
}

// LogConfig selects the log level and an optional rotating log file.
type LogConfig struct {
	Level   string `toml:"level"`
	File    string `toml:"file"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
}

// SetLogger applies c to the package logger. Without a file, messages keep
// going to stderr.
func (c *LogConfig) SetLogger() error {
	if c == nil {
		return nil
	}
	if c.Level != "" {
		lvl, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
		}
		log.SetLevel(lvl)
	}
	if c.File == "" {
		return nil
	}
	log.SetOutput(&lumberjack.Logger{
		Filename: c.File,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	})
	log.Debugf("sending log messages to %s", c.File)

	return nil
}

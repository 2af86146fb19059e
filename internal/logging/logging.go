// Package logging builds the logrus logger shared by the service layer.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hance08/teller/internal/config"
	"github.com/sirupsen/logrus"
)

// New returns a logger for cfg and a function that closes the log file, if
// one was opened. Without a file, entries go to stderr.
func New(cfg config.LogConfig) (*logrus.Logger, func() error, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	closer := func() error { return nil }
	var out io.Writer = os.Stderr

	if cfg.File != "" {
		path, err := config.ExpandPath(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("can not resolve log file path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("can not create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("can not open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	logger.SetOutput(out)
	return logger, closer, nil
}

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/eslsoft/conlang/internal/infrastructure/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds a configured logrus logger from application config.
// Output goes to stderr and, when the log directory is usable, to a rotating file.
func NewLogger(cfg *config.Config) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	if strings.EqualFold(cfg.Log.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	cleanup := func() {}
	if cfg.Log.File == "" {
		logger.SetOutput(os.Stderr)
		return logger, cleanup, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		logger.SetOutput(os.Stderr)
		logger.WithError(err).Warn("log directory unavailable, file logging disabled")
		return logger, cleanup, nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
	}
	logger.SetOutput(io.MultiWriter(os.Stderr, file))
	return logger, func() { _ = file.Close() }, nil
}

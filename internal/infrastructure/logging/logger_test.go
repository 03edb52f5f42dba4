package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eslsoft/conlang/internal/infrastructure/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	cfg := &config.Config{Log: config.LogConfig{Level: "debug", Format: "json", File: path, MaxSizeMB: 1}}

	logger, cleanup, err := NewLogger(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger.Info("profile saved")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "profile saved")
}

func TestNewLoggerSkipsUnusableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	cfg := &config.Config{Log: config.LogConfig{Level: "info", File: filepath.Join(blocker, "logs", "app.log")}}

	logger, cleanup, err := NewLogger(cfg)
	require.NoError(t, err)
	defer cleanup()
	assert.Same(t, os.Stderr, logger.Out)
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, _, err := NewLogger(&config.Config{Log: config.LogConfig{Level: "loud"}})
	assert.Error(t, err)
}

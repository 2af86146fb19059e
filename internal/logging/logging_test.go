package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/teller/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "teller.log")

	logger, closeLog, err := New(config.LogConfig{Level: "info", Format: "json", File: path})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.WithField("user", "alice").Info("Logged in")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"user":"alice"`)
	assert.Contains(t, string(data), `"msg":"Logged in"`)
}

func TestNewDefaultsToStderrText(t *testing.T) {
	logger, closeLog, err := New(config.NewDefault().Log)
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.Equal(t, os.Stderr, logger.Out)
	_, ok := logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "chatty"})
	assert.Error(t, err)
}

package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreLogrus puts the global logger back the way tests found it.
func restoreLogrus(t *testing.T) {
	t.Helper()
	out, level, formatter := logrus.StandardLogger().Out, logrus.GetLevel(), logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetOutput(out)
		logrus.SetLevel(level)
		logrus.SetFormatter(formatter)
	})
}

func TestSetupLogging_InvalidLevel(t *testing.T) {
	restoreLogrus(t)
	closeLog, err := setupLogging("chatty", "", false)
	assert.Error(t, err)
	assert.NotNil(t, closeLog)
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	restoreLogrus(t)
	// GIVEN a log file path
	path := filepath.Join(t.TempDir(), "airport.log")

	// WHEN logging is set up at info level and a line is logged
	closeLog, err := setupLogging("info", path, false)
	require.NoError(t, err)
	logrus.Infof("[tick %04d] Flight %s departed", 8, "PS101")
	closeLog()

	// THEN the line lands in the file
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[tick 0008] Flight PS101 departed")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetupLogging_InteractiveWithoutFileDiscards(t *testing.T) {
	restoreLogrus(t)
	_, err := setupLogging("debug", "", true)
	require.NoError(t, err)
	assert.Equal(t, io.Discard, logrus.StandardLogger().Out)
}

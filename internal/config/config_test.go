package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "production", c.Mode)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "", c.Log.File)
	assert.Equal(t, 81, c.Game.FieldSize)
	assert.Equal(t, 9, c.Side())
	assert.Nil(t, c.Game.Seed)
	assert.True(t, c.Production())
}

func TestLoadFile(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	path := writeConfig(t, `
mode: development
log:
  file: mines.log
  max_backups: 7
game:
  field_size: 100
  seed: 42
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.Development())
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "mines.log", c.Log.File)
	assert.Equal(t, 7, c.Log.MaxBackups)
	assert.Equal(t, 10, c.Log.MaxSizeMB)
	assert.Equal(t, 10, c.Side())
	require.NotNil(t, c.Game.Seed)
	assert.Equal(t, uint64(42), *c.Game.Seed)
	assert.Equal(t, uint64(42), c.Fields()["seed"])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	t.Setenv("MINES_LOG_LEVEL", "info")
	t.Setenv("MINES_LOG_FILE", "/tmp/x.log")

	c, err := Load(writeConfig(t, "mode: production\n"))
	require.NoError(t, err)
	assert.Equal(t, "development", c.Mode)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "/tmp/x.log", c.Log.File)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	tests := []struct {
		name    string
		content string
	}{
		{"field too small", "game:\n  field_size: 3\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad mode", "mode: staging\n"},
		{"not yaml", "mode: [\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetupLoggingStderrOnly(t *testing.T) {
	var stderr bytes.Buffer
	log := logrus.New()
	c := Default()

	require.NoError(t, SetupLogging(log, c, &stderr))

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "shown")
}

func TestSetupLoggingFile(t *testing.T) {
	var stderr bytes.Buffer
	log := logrus.New()
	c := Default()
	c.Log.Level = "debug"
	c.Log.File = filepath.Join(t.TempDir(), "mines.log")

	require.NoError(t, SetupLogging(log, c, &stderr))

	log.Debug("to file")
	log.Error("to both")

	data, err := os.ReadFile(c.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, string(data), "to both")
	assert.NotContains(t, stderr.String(), "to file")
	assert.Contains(t, stderr.String(), "to both")
}

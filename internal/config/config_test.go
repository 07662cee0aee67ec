package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("QUIZDESK_CONFIG_PATH", t.TempDir()) // no config.yaml there

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "quizzes", cfg.Data.Directory)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "production", cfg.Logger.Env)
	assert.Equal(t, "", cfg.Logger.File)
	assert.False(t, cfg.UI.NoColor)
}

func TestLoadConfig_ReadsConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	content := `data:
  directory: /var/lib/quizdesk
logger:
  level: debug
  env: development
ui:
  no_color: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	t.Setenv("QUIZDESK_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/quizdesk", cfg.Data.Directory)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "development", cfg.Logger.Env)
	assert.True(t, cfg.UI.NoColor)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("QUIZDESK_CONFIG_PATH", t.TempDir())
	t.Setenv("QUIZDESK_DATA_DIRECTORY", "/tmp/quiz-data")
	t.Setenv("QUIZDESK_LOGGER_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/quiz-data", cfg.Data.Directory)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":\n :::"), 0o644))
	t.Setenv("QUIZDESK_CONFIG_PATH", dir)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

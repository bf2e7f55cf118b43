package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "chatbot_memory.json", cfg.Memory.Path)
	assert.Equal(t, "exit", cfg.Session.ExitKeyword)
	assert.Empty(t, cfg.Log.Telegram.Token)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
memory:
  path: data/memory.json
session:
  exit_keyword: quit
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "data/memory.json", cfg.Memory.Path)
	assert.Equal(t, "quit", cfg.Session.ExitKeyword)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "memory:\n  path: other.json\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "other.json", cfg.Memory.Path)
	assert.Equal(t, "exit", cfg.Session.ExitKeyword)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "log: [unclosed")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestLoad_InvalidLevel(t *testing.T) {
	path := writeConfig(t, "log:\n  level: verbose\n")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to validate config")
}

func TestLoad_TelegramNeedsChatID(t *testing.T) {
	path := writeConfig(t, "log:\n  telegram:\n    token: abc\n")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to validate config")
}

func TestPath(t *testing.T) {
	t.Setenv(PathEnv, "")
	assert.Equal(t, DefaultPath, Path())

	t.Setenv(PathEnv, "/etc/learnbot.yaml")
	assert.Equal(t, "/etc/learnbot.yaml", Path())
}

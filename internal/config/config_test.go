package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Features.FunCommands)
	assert.Contains(t, cfg.Aliases["flip"], "coin")
	assert.NotEmpty(t, cfg.Chat.AutoResponse)
	assert.Greater(t, cfg.Chat.Buffer, 0)
	assert.NotEmpty(t, cfg.LLM.Endpoint)
	assert.NotEmpty(t, cfg.LLM.Model)
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "features:\n  fun_commands: false\nchat:\n  auto_response: \"ok: %s\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Features.FunCommands)
	assert.Equal(t, "ok: %s", cfg.Chat.AutoResponse)
	// Untouched sections keep their defaults.
	assert.NotEmpty(t, cfg.LLM.Model)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CMDLY_FUN_COMMANDS", "false")
	t.Setenv("CMDLY_LLM_MODEL", "test/model")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Features.FunCommands)
	assert.Equal(t, "test/model", cfg.LLM.Model)
}

func TestLoad_BufferFloorsAtPositive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chat:\n  buffer: -5\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Greater(t, cfg.Chat.Buffer, 0)
}

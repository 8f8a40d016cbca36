package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, DefaultDeck, cfg.Deck)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
}

func TestLoadReadsFile(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, "anki-llm")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	content := "endpoint = \"http://localhost:9999\"\ndeck = \"Core 2k\"\ntimeout_seconds = 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.Endpoint)
	assert.Equal(t, "Core 2k", cfg.Deck)
	assert.Equal(t, int64(3), int64(cfg.Timeout().Seconds()))
}

func TestLoadFillsBlankValues(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, "anki-llm")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("deck = \"\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, DefaultDeck, cfg.Deck)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, "anki-llm")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("endpoint = ["), 0o600))

	_, err := Load()
	require.Error(t, err)
}

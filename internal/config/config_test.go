package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("https://tracker.example.com/api/v1")
	cfg.Storage.DataDir = "/var/lib/pocketfin"
	cfg.Log.Level = "debug"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.API.BaseURL, got.API.BaseURL)
	assert.Equal(t, cfg.API.TimeoutSeconds, got.API.TimeoutSeconds)
	assert.Equal(t, cfg.Storage.DataDir, got.Storage.DataDir)
	assert.Equal(t, "debug", got.Log.Level)
}

func TestDefaults(t *testing.T) {
	cfg := Default("")

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Storage.DataDir)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDataDir(t *testing.T) {
	cfg := Default("")
	assert.Equal(t, filepath.Join("/home/x/.pocketfin", "data"), cfg.DataDir("/home/x/.pocketfin"))

	cfg.Storage.DataDir = "/tmp/elsewhere"
	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir("/home/x/.pocketfin"))
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("https://tracker.example.com/api/v1")
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "base_url: https://tracker.example.com/api/v1")
	assert.Contains(t, contents, "timeout_seconds: 15")
	assert.Contains(t, contents, "level: info")
}

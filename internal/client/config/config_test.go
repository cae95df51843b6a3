package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"invctl"}, args...)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:3000", c.ServerURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Empty(t, c.Token)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_url":      "http://json:1",
		"request_timeout": "3s",
	})

	t.Run("json only", func(t *testing.T) {
		withArgs(t, "-c", path, "list")
		cfg := LoadConfig()
		assert.Equal(t, "http://json:1", cfg.ServerURL)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	})

	t.Run("env over json", func(t *testing.T) {
		withArgs(t, "-c", path, "list")
		t.Setenv("INVTRACK_SERVER", "http://env:2")
		t.Setenv("INVTRACK_TOKEN", "env-token")
		cfg := LoadConfig()
		assert.Equal(t, "http://env:2", cfg.ServerURL)
		assert.Equal(t, "env-token", cfg.Token)
	})

	t.Run("flags over env", func(t *testing.T) {
		withArgs(t, "-a", "http://flag:3", "-token", "flag-token", "-t", "7", "get", "x")
		t.Setenv("INVTRACK_SERVER", "http://env:2")
		t.Setenv("INVTRACK_TOKEN", "env-token")
		cfg := LoadConfig()
		assert.Equal(t, "http://flag:3", cfg.ServerURL)
		assert.Equal(t, "flag-token", cfg.Token)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	})
}

func TestParseJson_InvalidPanics(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
	withArgs(t, "-config", bad)

	require.Panics(t, func() { parseJson(&Config{}) })
}

func TestParseFlags_BadTimeoutPanics(t *testing.T) {
	withArgs(t, "-t", "abc")

	require.Panics(t, func() { parseFlags(&Config{}) })
}

func TestCommandArgs(t *testing.T) {
	withArgs(t, "-a", "http://h:1", "-token=abc", "list", "-severity", "High")

	assert.Equal(t, []string{"list", "-severity", "High"}, CommandArgs())
}

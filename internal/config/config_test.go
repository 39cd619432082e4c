package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/automaton/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "automaton.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "01", cfg.Alphabet)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automaton.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
alphabet: abc
deferred: true
redis:
  addr: localhost:6379
  ttl: 90s
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.Alphabet)
	assert.True(t, cfg.Deferred)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.Equal(t, ":8080", cfg.Listen, "unset keys keep defaults")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automaton.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"alphabet": "", "log_level": "debug"}`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Alphabet)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automaton.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alphabet: [unclosed"), 0644))
	_, err := config.Load(path)
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	cfg := Default()

	require.Equal(t, "sha256", cfg.Store.HashAlgorithm)
	require.Equal(t, "admin", cfg.Store.Admin.Username)
	require.Len(t, cfg.Store.Users, 5)
	require.Len(t, cfg.Store.Forms, 2)
	require.Equal(t, []string{"Speed", "Clarity", "Friendliness"}, cfg.Store.Forms[1].Categories)
	require.Equal(t, DefaultSecret, cfg.Auth.Secret)
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := os.WriteFile(path, []byte(`
logger:
  level: debug
store:
  hashAlgorithm: sha3-256
  admin:
    username: root
    password: toor
auth:
  ttl: 1h
  secret: test-secret
export:
  path: out.txt
`), 0o600)
	require.NoError(t, err)

	cfg, err := New(path)
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Logger.Level)
	require.Equal(t, "sha3-256", cfg.Store.HashAlgorithm)
	require.Equal(t, "root", cfg.Store.Admin.Username)
	require.Len(t, cfg.Store.Users, 5, "empty seed users fall back to the demo accounts")
	require.Equal(t, time.Hour, cfg.Auth.TTL)
	require.Equal(t, "test-secret", cfg.Auth.Secret)
	require.Equal(t, "out.txt", cfg.Export.Path)
	require.Equal(t, 5*time.Second, cfg.Console.ShutdownTimeout)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewWithoutFile(t *testing.T) {
	t.Setenv("HASH_ALGORITHM", "blake2b-256")

	cfg, err := New("")
	require.NoError(t, err)
	require.Equal(t, "blake2b-256", cfg.Store.HashAlgorithm)
	require.Equal(t, "admin", cfg.Store.Admin.Username)
}

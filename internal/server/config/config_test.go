package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"server"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "barberbook.db", cfg.DBPath)
	require.Equal(t, "dev-secret-change-me", cfg.JWTSecret)
	require.Equal(t, 12*time.Hour, cfg.TokenTTL)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", ":9090", "-s", "prod-secret", "-t", "30m")

	cfg := LoadConfig()
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "prod-secret", cfg.JWTSecret)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, "barberbook.db", cfg.DBPath)
}

func TestLoadConfig_JSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"addr":":7070","token_ttl":"1h"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, ":7070", cfg.Addr)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	// Field absent from JSON keeps its default.
	require.Equal(t, "barberbook.db", cfg.DBPath)
}

func TestLoadConfig_FlagsBeatJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"addr":":7070"}`), 0o600))

	withArgs(t, "-c", path, "-a", ":6060")

	cfg := LoadConfig()
	require.Equal(t, ":6060", cfg.Addr)
}

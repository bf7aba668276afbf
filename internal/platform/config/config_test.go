package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdjournal/internal/platform/config"
)

func noEnv(string) (string, bool) { return "", false }

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	cfg, err := config.Load(vault, noEnv)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(vault, ".mdjournal", "mdjournal.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(vault, "entries"), cfg.EntriesDir)
	assert.Equal(t, "127.0.0.1:7777", cfg.ServeAddr)
	assert.Equal(t, 14, cfg.SeriesLimit)
	assert.False(t, cfg.Verbose)
	assert.NotNil(t, cfg.Location)
}

func TestLoadRequiresVault(t *testing.T) {
	t.Parallel()
	_, err := config.Load("", noEnv)
	assert.Error(t, err)
}

func TestLoadLayersFileDotenvAndEnvironment(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(vault, ".mdjournal"), 0o755))
	toml := "timezone = \"UTC\"\nverbose = true\n\n[serve]\naddr = \":9000\"\n\n[series]\nlimit = 30\n"
	require.NoError(t, os.WriteFile(filepath.Join(vault, ".mdjournal", "config.toml"), []byte(toml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(vault, ".env"), []byte("MDJOURNAL_ADDR=:9100\nMDJOURNAL_TIMEZONE=Europe/Berlin\n"), 0o644))

	env := map[string]string{"MDJOURNAL_TIMEZONE": "America/New_York"}
	cfg, err := config.Load(vault, func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.ServeAddr, ".env overrides config.toml")
	assert.Equal(t, "America/New_York", cfg.Timezone, "environment overrides .env")
	assert.Equal(t, "America/New_York", cfg.Location.String())
	assert.Equal(t, 30, cfg.SeriesLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	_, err := config.Load(vault, func(k string) (string, bool) {
		if k == "MDJOURNAL_TIMEZONE" {
			return "Mars/Olympus", true
		}
		return "", false
	})
	assert.Error(t, err)

	_, err = config.Load(vault, func(k string) (string, bool) {
		if k == "MDJOURNAL_VERBOSE" {
			return "maybe", true
		}
		return "", false
	})
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()
	vault := t.TempDir()
	cfg, err := config.Load(vault, noEnv)
	require.NoError(t, err)
	cfg.Timezone = "UTC"
	cfg.SeriesLimit = 7
	require.NoError(t, cfg.Save())

	reloaded, err := config.Load(vault, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "UTC", reloaded.Timezone)
	assert.Equal(t, 7, reloaded.SeriesLimit)
}

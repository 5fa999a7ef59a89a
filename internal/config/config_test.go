package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Greater(t, cfg.Server.WriteTimeout, cfg.Advice.Timeout)
	require.Equal(t, 50, cfg.Store.HistoryLimit)
	require.Equal(t, "gemini-2.5-flash", cfg.Advice.Model)
	require.Equal(t, 15*time.Second, cfg.Advice.Timeout)
	require.Equal(t, SeedSourceDemo, cfg.Seed.Source)
	require.Equal(t, int64(2<<20), cfg.Business.MaxLogoBytes)
	require.False(t, cfg.S3.LogoImportEnabled())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("STORE_HISTORY_LIMIT", "5")
	t.Setenv("ADVICE_TIMEOUT", "3s")
	t.Setenv("S3_BUCKET_NAME", "brand-assets")
	t.Setenv("S3_LOGO_KEY", "logo.png")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Address)
	require.Equal(t, 5, cfg.Store.HistoryLimit)
	require.Equal(t, 3*time.Second, cfg.Advice.Timeout)
	require.True(t, cfg.S3.LogoImportEnabled())
}

func TestLoadConfigReadsGeminiKeyAliases(t *testing.T) {
	t.Setenv("ADVICE_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "test-key", cfg.Advice.APIKey)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
seed:
  source: mongo
  database: gym_seed
business:
  name: Iron Temple
  max_logo_bytes: 1024
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, SeedSourceMongo, cfg.Seed.Source)
	require.Equal(t, "gym_seed", cfg.Seed.Database)
	require.Equal(t, "Iron Temple", cfg.Business.Name)
	require.Equal(t, int64(1024), cfg.Business.MaxLogoBytes)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("unknown seed source", func(t *testing.T) {
		t.Setenv("SEED_SOURCE", "postgres")
		_, err := LoadConfig(t.TempDir())
		require.ErrorContains(t, err, "seed.source")
	})
	t.Run("write timeout not longer than advice timeout", func(t *testing.T) {
		t.Setenv("SERVER_WRITE_TIMEOUT", "10s")
		t.Setenv("ADVICE_TIMEOUT", "15s")
		_, err := LoadConfig(t.TempDir())
		require.ErrorContains(t, err, "server.write_timeout")
	})
	t.Run("logo limit above 2 MiB", func(t *testing.T) {
		t.Setenv("BUSINESS_MAX_LOGO_BYTES", "4194304")
		_, err := LoadConfig(t.TempDir())
		require.ErrorContains(t, err, "business.max_logo_bytes")
	})
}

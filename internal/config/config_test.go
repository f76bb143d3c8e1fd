package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 10, cfg.Fetch.TimeoutSeconds)
	require.Equal(t, 3, cfg.Breaker.FailureThreshold)
	require.Equal(t, 300, cfg.Breaker.CooldownSeconds)
	require.Equal(t, 3, cfg.Scrape.Tier2Threshold)
	require.Equal(t, 3, cfg.Scrape.CandidatesPerSite)
	require.Equal(t, 5, cfg.Ranking.TopN)
	require.Equal(t, 900, cfg.Cache.TTLSeconds)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("server:\n  port: 9999\ncache:\n  ttl_seconds: 60\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.Server.Port)
	require.Equal(t, 60, cfg.Cache.TTLSeconds)
	// Untouched keys keep defaults.
	require.Equal(t, 12, cfg.Scrape.AdapterTimeoutSeconds)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)

	bad := cfg
	bad.Server.Port = 0
	require.Error(t, bad.Validate())

	bad = cfg
	bad.Breaker.FailureThreshold = 0
	require.Error(t, bad.Validate())

	bad = cfg
	bad.Ranking.TopN = -1
	require.Error(t, bad.Validate())
}

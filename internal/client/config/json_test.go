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

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_endpoint_addr":  "www.example:9000",
		"online_check_interval": "10s",
		"backend":               "hosted",
		"hosted_url":            "https://x.supabase.co",
		"login_delay":           "0s",
	})

	t.Run("overlays present keys", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "www.example:9000", cfg.ServerEndpointAddr)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, BackendHosted, cfg.Backend)
		assert.Equal(t, "https://x.supabase.co", cfg.HostedURL)
		assert.Equal(t, time.Duration(0), cfg.LoginDelay)
		assert.Equal(t, AuthModeDemo, cfg.AuthMode)
		assert.Equal(t, "portal.db", cfg.SessionDB)
	})

	t.Run("no config flag leaves config alone", func(t *testing.T) {
		cfg := &Config{ServerEndpointAddr: "keep"}
		parseJson(cfg, nil)
		assert.Equal(t, "keep", cfg.ServerEndpointAddr)
	})

	t.Run("missing file panics", func(t *testing.T) {
		assert.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})

	t.Run("bad json panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
		assert.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})
}

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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_grpc":             "www.example:9000",
		"database_dsn":                   "postgres://x",
		"secret_key":                     "my_secret_key",
		"api_key":                        "anon",
		"access_token_validity_duration": "2h",
		"s3_root_user":                   "user",
		"s3_root_password":               "password",
		"s3_bucket":                      "bucket",
		"s3_region":                      "region",
		"s3_base_endpoint":               "base_endpoint",
		"otlp_endpoint":                  "http://otel:4318",
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, &Config{
			EndpointAddrGRPC:            "www.example:9000",
			DatabaseDSN:                 "postgres://x",
			SecretKey:                   "my_secret_key",
			APIKey:                      "anon",
			AccessTokenValidityDuration: 2 * time.Hour,
			S3RootUser:                  "user",
			S3RootPassword:              "password",
			S3Bucket:                    "bucket",
			S3Region:                    "region",
			S3BaseEndpoint:              "base_endpoint",
			OTLPEndpoint:                "http://otel:4318",
		}, cfg)
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		want := *cfg
		parseJson(cfg, []string{"-a", ":1"})
		assert.Equal(t, want, *cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		partial := writeTempJSON(t, "", "partial.json", map[string]any{"api_key": "only-this"})
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", partial})
		assert.Equal(t, "only-this", cfg.APIKey)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, 60*time.Minute, cfg.AccessTokenValidityDuration)
	})

	t.Run("missing file panics", func(t *testing.T) {
		assert.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
		assert.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})
}

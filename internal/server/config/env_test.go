package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	parseEnv(cfg, map[string]string{
		"PORTAL_GRPC_ADDR":        ":7000",
		"PORTAL_API_KEY":          "env-key",
		"PORTAL_ACCESS_TOKEN_TTL": "90m",
		"API_KEY":                 "unprefixed-is-ignored",
	})

	assert.Equal(t, ":7000", cfg.EndpointAddrGRPC)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 90*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "secretKey", cfg.SecretKey)
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	assert.Panics(t, func() {
		parseEnv(&Config{}, map[string]string{"PORTAL_ACCESS_TOKEN_TTL": "later"})
	})
}

package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-i", "10", "-b", "hosted", "-m", "provider",
				"-k", "anon", "-h", "https://x.supabase.co", "-l", "0", "-s", "/tmp/p.db"},
			expected: &Config{
				ServerEndpointAddr:  "127.0.0.1:9090",
				OnlineCheckInterval: 10 * time.Second,
				Backend:             BackendHosted,
				AuthMode:            AuthModeProvider,
				APIKey:              "anon",
				HostedURL:           "https://x.supabase.co",
				LoginDelay:          0,
				SessionDB:           "/tmp/p.db",
			},
		},
		{
			name: "unknown flags ignored",
			args: []string{"-x", "y", "-a", "host:1", "--verbose"},
			expected: &Config{
				ServerEndpointAddr: "host:1",
			},
		},
		{name: "incorrect check interval", args: []string{"-i", "abc"}, expectPanic: true},
		{name: "incorrect delay", args: []string{"-l", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

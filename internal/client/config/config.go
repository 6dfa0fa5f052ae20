package config

import (
	"fmt"
	"os"
	"time"
)

const (
	BackendGRPC   = "grpc"
	BackendHosted = "hosted"

	AuthModeDemo     = "demo"
	AuthModeProvider = "provider"
)

// Config holds runtime settings for the portal CLI.
type Config struct {
	ServerEndpointAddr  string        `env:"SERVER_ADDR"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
	Backend             string        `env:"BACKEND"`
	AuthMode            string        `env:"AUTH_MODE"`
	APIKey              string        `env:"API_KEY"`
	HostedURL           string        `env:"HOSTED_URL"`
	LoginDelay          time.Duration `env:"LOGIN_DELAY"`
	SessionDB           string        `env:"SESSION_DB"`
}

// LoadDefaults populates c with development defaults. Logins are checked
// against the demo allowlist until AuthMode is switched to provider.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.Backend = BackendGRPC
	c.AuthMode = AuthModeDemo
	c.APIKey = "dev-anon-key"
	c.HostedURL = ""
	c.LoginDelay = 500 * time.Millisecond
	c.SessionDB = "portal.db"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGRPC:
	case BackendHosted:
		if c.HostedURL == "" {
			return fmt.Errorf("backend %q needs a hosted URL", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	switch c.AuthMode {
	case AuthModeDemo, AuthModeProvider:
	default:
		return fmt.Errorf("unknown auth mode %q", c.AuthMode)
	}
	return nil
}

// LoadConfig applies defaults, JSON, flags and environment in that order.
// Malformed input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	parseEnv(cfg, envMap())
	return cfg
}

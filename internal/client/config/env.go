package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "PORTAL_CLI_"

func envMap() map[string]string {
	return env.ToMap(os.Environ())
}

func parseEnv(cfg *Config, environ map[string]string) {
	if err := env.ParseWithOptions(cfg, env.Options{
		Environment: environ,
		Prefix:      EnvPrefix,
	}); err != nil {
		panic(err)
	}
}

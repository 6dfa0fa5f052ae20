package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable the backend reads.
const EnvPrefix = "PORTAL_"

func envMap() map[string]string {
	return env.ToMap(os.Environ())
}

// parseEnv overlays PORTAL_* variables from environ. Unset variables leave
// the field alone.
func parseEnv(config *Config, environ map[string]string) {
	if err := env.ParseWithOptions(config, env.Options{
		Environment: environ,
		Prefix:      EnvPrefix,
	}); err != nil {
		panic(err)
	}
}

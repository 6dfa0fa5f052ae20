package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ttioportal/internal/flagx"
	"github.com/dmitrijs2005/ttioportal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr  string          `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration  `json:"online_check_interval"`
	Backend             string          `json:"backend"`
	AuthMode            string          `json:"auth_mode"`
	APIKey              string          `json:"api_key"`
	HostedURL           string          `json:"hosted_url"`
	LoginDelay          *timex.Duration `json:"login_delay"`
	SessionDB           string          `json:"session_db"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays cfg with the file named by -c/-config. Keys missing
// from the file keep their value. login_delay may be set to 0 explicitly.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	setString(&cfg.Backend, jc.Backend)
	setString(&cfg.AuthMode, jc.AuthMode)
	setString(&cfg.APIKey, jc.APIKey)
	setString(&cfg.HostedURL, jc.HostedURL)
	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	setString(&cfg.SessionDB, jc.SessionDB)
}

package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/flagx"
)

// parseFlags populates Config fields from the flags listed in doc.go. Other
// arguments are ignored.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-b", "-m", "-k", "-h", "-l", "-s"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "backend: grpc or hosted")
	fs.StringVar(&cfg.AuthMode, "m", cfg.AuthMode, "login check: demo or provider")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "project API key")
	fs.StringVar(&cfg.HostedURL, "h", cfg.HostedURL, "hosted provider base URL")
	loginDelay := fs.Int("l", int(cfg.LoginDelay.Milliseconds()), "login submit delay (in milliseconds)")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "session database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.LoginDelay = time.Duration(*loginDelay) * time.Millisecond
}

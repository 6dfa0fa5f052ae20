// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags.
//  4. PORTAL_CLI_* environment variables.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-b string   backend: "grpc" or "hosted"
//	-m string   login check: "demo" or "provider"
//	-k string   project API key
//	-h string   hosted provider base URL
//	-l int      login submit delay (milliseconds)
//	-s string   session database file
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "backend": "hosted",
//	  "auth_mode": "provider",
//	  "api_key": "anon",
//	  "hosted_url": "https://project.supabase.co",
//	  "login_delay": "500ms",
//	  "session_db": "portal.db"
//	}
package config

// Package probe is a deployment check: it reads the hosted provider's URL
// and anon key from the environment and fetches a few student rows.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/store"
	"github.com/subosito/gotenv"
)

// SampleSize is the number of rows the probe reads.
const SampleSize = 5

const (
	ExitOK          = 0
	ExitMissingEnv  = 1
	ExitReadFailure = 2
)

// DotEnvFile is loaded before the environment is read.
const DotEnvFile = ".env.local"

// ErrMissingEnv is returned by LoadConfig when a required value is unset.
var ErrMissingEnv = errors.New("missing environment variables")

// Config is what the probe needs to reach the provider.
type Config struct {
	Endpoint  string
	AccessKey string
}

// vars are the accepted spellings. The unprefixed names win over the
// NEXT_PUBLIC_ ones.
type vars struct {
	URL       string `env:"SUPABASE_URL"`
	PublicURL string `env:"NEXT_PUBLIC_SUPABASE_URL"`
	Key       string `env:"SUPABASE_ANON_KEY"`
	PublicKey string `env:"NEXT_PUBLIC_SUPABASE_ANON_KEY"`
}

func firstSet(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// LoadConfig resolves Config from environ. Both fields are required; the
// error names every variable pair that is missing.
func LoadConfig(environ map[string]string) (*Config, error) {
	var v vars
	if err := env.ParseWithOptions(&v, env.Options{Environment: environ}); err != nil {
		return nil, err
	}

	cfg := &Config{
		Endpoint:  firstSet(v.URL, v.PublicURL),
		AccessKey: firstSet(v.Key, v.PublicKey),
	}

	var missing []string
	if cfg.Endpoint == "" {
		missing = append(missing, "SUPABASE_URL (or NEXT_PUBLIC_SUPABASE_URL)")
	}
	if cfg.AccessKey == "" {
		missing = append(missing, "SUPABASE_ANON_KEY (or NEXT_PUBLIC_SUPABASE_ANON_KEY)")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}
	return cfg, nil
}

// LoadDotEnv adds the variables of the dotenv file at path to environ.
// Variables already in environ keep their value. A missing file is not an
// error.
func LoadDotEnv(path string, environ map[string]string) error {
	values, err := gotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	for k, v := range values {
		if _, ok := environ[k]; !ok {
			environ[k] = v
		}
	}
	return nil
}

// Execute runs the probe and returns the process exit status. dial is only
// called once the configuration is complete.
func Execute(ctx context.Context, environ map[string]string, dial func(Config) store.Reader, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig(environ)
	if err != nil {
		fmt.Fprintln(stderr, "Missing Supabase env vars. Check your .env file.")
		fmt.Fprintln(stderr, err)
		return ExitMissingEnv
	}

	rows, err := dial(*cfg).Select(ctx, common.StudentTable, SampleSize)
	if err != nil {
		fmt.Fprintln(stderr, "Supabase error:", err)
		return ExitReadFailure
	}
	if rows == nil {
		rows = []map[string]any{}
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		fmt.Fprintln(stderr, "Supabase error:", err)
		return ExitReadFailure
	}

	fmt.Fprintln(stdout, "Supabase connection OK. Rows:")
	fmt.Fprintln(stdout, string(out))
	return ExitOK
}

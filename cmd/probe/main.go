package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/ttioportal/internal/hosted"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/probe"
	"github.com/dmitrijs2005/ttioportal/internal/store"
)

func main() {
	environ := env.ToMap(os.Environ())
	if err := probe.LoadDotEnv(probe.DotEnvFile, environ); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	logger := logging.New(os.Stderr, logging.FormatText, slog.LevelWarn)
	dial := func(c probe.Config) store.Reader {
		return hosted.New(c.Endpoint, c.AccessKey, hosted.WithLogger(logger))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	code := probe.Execute(ctx, environ, dial, os.Stdout, os.Stderr)
	cancel()

	os.Exit(code)
}

// Package kv is the CLI's local key/value table. The session record is kept
// here between runs.
package kv

import (
	"context"

	"github.com/dmitrijs2005/ttioportal/internal/session"
)

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var (
	_ Repository = (*SQLiteRepository)(nil)
	_ session.KV = Repository(nil)
)

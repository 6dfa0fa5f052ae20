// Package session keeps the single client-side session record written after
// a successful login.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/models"
)

// Key is the key under which the session record is stored.
const Key = "session.user"

type Writer interface {
	Write(ctx context.Context, u *models.AuthenticatedUser) error
}

type Store interface {
	Writer
	// Read returns common.ErrorNotFound when nobody is signed in.
	Read(ctx context.Context) (*models.AuthenticatedUser, error)
	Clear(ctx context.Context) error
}

// MemoryStore holds the session for the lifetime of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	user *models.AuthenticatedUser
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Write(_ context.Context, u *models.AuthenticatedUser) error {
	cp := *u
	s.mu.Lock()
	s.user = &cp
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Read(context.Context) (*models.AuthenticatedUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, common.ErrorNotFound
	}
	cp := *s.user
	return &cp, nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// KV is the byte-oriented key/value storage a KVStore persists into. The
// client's SQLite repository implements it. Get returns (nil, nil) for a
// missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// KVStore persists the session record as JSON so that it survives restarts
// of the CLI.
type KVStore struct {
	kv KV
}

func NewKVStore(kv KV) *KVStore {
	return &KVStore{kv: kv}
}

func (s *KVStore) Write(ctx context.Context, u *models.AuthenticatedUser) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, Key, data); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *KVStore) Read(ctx context.Context) (*models.AuthenticatedUser, error) {
	data, err := s.kv.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if data == nil {
		return nil, common.ErrorNotFound
	}
	var u models.AuthenticatedUser
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &u, nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

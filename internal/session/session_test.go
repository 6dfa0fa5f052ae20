package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapKV struct {
	m      map[string][]byte
	setErr error
}

func newMapKV() *mapKV { return &mapKV{m: map[string][]byte{}} }

func (k *mapKV) Get(_ context.Context, key string) ([]byte, error) { return k.m[key], nil }
func (k *mapKV) Set(_ context.Context, key string, v []byte) error {
	if k.setErr != nil {
		return k.setErr
	}
	k.m[key] = v
	return nil
}
func (k *mapKV) Delete(_ context.Context, key string) error { delete(k.m, key); return nil }

func sampleUser() *models.AuthenticatedUser {
	return &models.AuthenticatedUser{
		UserID:     "u-1",
		Email:      "student@bowiestate.edu",
		Role:       models.RoleStudent,
		SignedInAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStores_WriteReadClear(t *testing.T) {
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"kv":     NewKVStore(newMapKV()),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Read(ctx)
			assert.ErrorIs(t, err, common.ErrorNotFound)

			require.NoError(t, s.Write(ctx, sampleUser()))
			got, err := s.Read(ctx)
			require.NoError(t, err)
			assert.Equal(t, sampleUser(), got)

			require.NoError(t, s.Clear(ctx))
			_, err = s.Read(ctx)
			assert.ErrorIs(t, err, common.ErrorNotFound)
		})
	}
}

func TestMemoryStore_CopiesRecord(t *testing.T) {
	s := NewMemoryStore()
	u := sampleUser()
	require.NoError(t, s.Write(context.Background(), u))
	u.Email = "changed"

	got, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "student@bowiestate.edu", got.Email)
}

func TestKVStore_Errors(t *testing.T) {
	kv := newMapKV()
	kv.setErr = errors.New("disk full")
	s := NewKVStore(kv)

	err := s.Write(context.Background(), sampleUser())
	assert.ErrorContains(t, err, "write session")

	kv.m[Key] = []byte("{not json")
	_, err = s.Read(context.Background())
	assert.ErrorContains(t, err, "decode session")
}

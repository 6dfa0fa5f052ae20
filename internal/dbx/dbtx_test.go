package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE session (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

func put(ctx context.Context, q DBTX, key string) error {
	_, err := q.ExecContext(ctx, `INSERT INTO session(key, value) VALUES (?, 'x')`, key)
	return err
}

func count(ctx context.Context, t *testing.T, q DBTX) int {
	t.Helper()
	var n int
	require.NoError(t, q.QueryRowContext(ctx, `SELECT COUNT(*) FROM session`).Scan(&n))
	return n
}

func TestDBTX_DBAndTxAreInterchangeable(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	require.NoError(t, put(ctx, db, "a"))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, put(ctx, tx, "b"))
	require.Equal(t, 2, count(ctx, t, tx))
	require.NoError(t, tx.Rollback())

	require.Equal(t, 1, count(ctx, t, db))
}

package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/dbx"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/server/models"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/orphans"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/rows"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeAccounts struct {
	byEmail   map[string]*models.Account
	createErr error
	getErr    error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: map[string]*models.Account{}}
}

func (f *fakeAccounts) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[a.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	cp := *a
	f.byEmail[a.Email] = &cp
	return a, nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return a, nil
}

type fakeRows struct {
	insertErr error
	selectOut []map[string]any
	selectErr error
	inserted  []map[string]any
}

func (f *fakeRows) Insert(_ context.Context, _ string, fields map[string]any) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, fields)
	return nil
}

func (f *fakeRows) Select(context.Context, string, int) ([]map[string]any, error) {
	return f.selectOut, f.selectErr
}

type fakeOrphans struct {
	created   []*models.OrphanRecord
	createErr error
	keys      map[int64]string
	keyErr    error
}

func (f *fakeOrphans) Create(_ context.Context, o *models.OrphanRecord) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, o)
	o.ID = int64(len(f.created))
	return o.ID, nil
}

func (f *fakeOrphans) SetReportKey(_ context.Context, id int64, key string) error {
	if f.keyErr != nil {
		return f.keyErr
	}
	if f.keys == nil {
		f.keys = map[int64]string{}
	}
	f.keys[id] = key
	return nil
}

type fakeRepoManager struct {
	a *fakeAccounts
	r *fakeRows
	o *fakeOrphans
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository       { return m.a }
func (m *fakeRepoManager) Rows(dbx.DBTX) rows.Repository               { return m.r }
func (m *fakeRepoManager) Orphans(dbx.DBTX) orphans.Repository         { return m.o }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

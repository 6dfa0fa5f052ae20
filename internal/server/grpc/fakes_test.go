package grpc

import (
	"context"

	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/dmitrijs2005/ttioportal/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeAccounts struct {
	createID  string
	createErr error
	metadata  map[string]any
	signIn    *services.SignInResult
	signInErr error
}

func (f *fakeAccounts) CreateAccount(_ context.Context, email, password string, metadata map[string]any) (string, error) {
	f.metadata = metadata
	return f.createID, f.createErr
}

func (f *fakeAccounts) SignIn(context.Context, string, string) (*services.SignInResult, error) {
	return f.signIn, f.signInErr
}

type fakeRows struct {
	inserted  map[string]any
	table     string
	insertErr error
	rows      []map[string]any
	selectErr error
}

func (f *fakeRows) Insert(_ context.Context, table string, fields map[string]any) error {
	f.table, f.inserted = table, fields
	return f.insertErr
}

func (f *fakeRows) Select(_ context.Context, table string, _ int) ([]map[string]any, error) {
	f.table = table
	return f.rows, f.selectErr
}

type fakeOrphans struct {
	reported []models.Orphan
	err      error
}

func (f *fakeOrphans) Report(_ context.Context, o models.Orphan) error {
	f.reported = append(f.reported, o)
	return f.err
}

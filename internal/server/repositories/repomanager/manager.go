package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/ttioportal/internal/dbx"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/orphans"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/rows"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Rows(db dbx.DBTX) rows.Repository
	Orphans(db dbx.DBTX) orphans.Repository
}

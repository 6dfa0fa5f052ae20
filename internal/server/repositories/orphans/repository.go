// Package orphans stores reports of identity accounts that have no profile
// row.
package orphans

import (
	"context"

	"github.com/dmitrijs2005/ttioportal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, o *models.OrphanRecord) (int64, error)
	SetReportKey(ctx context.Context, id int64, key string) error
}

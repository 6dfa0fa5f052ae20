package orphans

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/dbx"
	"github.com/dmitrijs2005/ttioportal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o *models.OrphanRecord) (int64, error) {
	query :=
		`INSERT INTO orphaned_identities (user_id, email, reason, detected_at, reported_by)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		 RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, o.UserID, o.Email, o.Reason, o.DetectedAt, o.ReportedBy).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	o.ID = id
	return id, nil
}

func (r *PostgresRepository) SetReportKey(ctx context.Context, id int64, key string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orphaned_identities SET report_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/repomanager"
)

type RowService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewRowService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *RowService {
	return &RowService{db: db, repomanager: m, log: l.With("module", "rows")}
}

// Insert writes one row. Validation failures keep common.ErrorValidation in
// their chain; storage failures become common.ErrorInternal.
func (s *RowService) Insert(ctx context.Context, table string, fields map[string]any) error {
	err := s.repomanager.Rows(s.db).Insert(ctx, table, fields)
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrorValidation) {
		return err
	}
	s.log.Error(ctx, "row insert failed", "table", table, "error", err)
	return common.ErrorInternal
}

func (s *RowService) Select(ctx context.Context, table string, limit int) ([]map[string]any, error) {
	rows, err := s.repomanager.Rows(s.db).Select(ctx, table, limit)
	if err == nil {
		return rows, nil
	}
	if errors.Is(err, common.ErrorValidation) {
		return nil, err
	}
	s.log.Error(ctx, "row select failed", "table", table, "error", err)
	return nil, common.ErrorInternal
}

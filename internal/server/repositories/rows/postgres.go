package rows

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/dbx"
)

// MaxSelectLimit caps Select regardless of the requested limit.
const MaxSelectLimit = 100

type PostgresRepository struct {
	db     dbx.DBTX
	tables map[string]Table
}

// NewPostgresRepository exposes tables (Student when none are given).
func NewPostgresRepository(db dbx.DBTX, tables ...Table) *PostgresRepository {
	if len(tables) == 0 {
		tables = []Table{Student}
	}
	m := make(map[string]Table, len(tables))
	for _, t := range tables {
		m[t.Name] = t
	}
	return &PostgresRepository{db: db, tables: m}
}

func (r *PostgresRepository) table(name string) (Table, error) {
	t, ok := r.tables[name]
	if !ok {
		return Table{}, fmt.Errorf("%w: unknown table %q", common.ErrorValidation, name)
	}
	return t, nil
}

// Insert writes one row. Column names are checked against the table's
// writable list and emitted in sorted order.
func (r *PostgresRepository) Insert(ctx context.Context, table string, fields map[string]any) error {
	t, err := r.table(table)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no columns to insert", common.ErrorValidation)
	}

	cols := make([]string, 0, len(fields))
	for c := range fields {
		if !slices.Contains(t.Writable, c) {
			return fmt.Errorf("%w: unknown column %q in table %q", common.ErrorValidation, c, table)
		}
		cols = append(cols, c)
	}
	sort.Strings(cols)

	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[c]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Select returns up to limit rows (at most MaxSelectLimit) keyed by column.
func (r *PostgresRepository) Select(ctx context.Context, table string, limit int) ([]map[string]any, error) {
	t, err := r.table(table)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > MaxSelectLimit {
		limit = MaxSelectLimit
	}

	exprs := make([]string, len(t.Readable))
	for i, c := range t.Readable {
		exprs[i] = c.sql()
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s LIMIT $1", strings.Join(exprs, ", "), t.Name, t.OrderBy)

	rs, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rs.Close()

	result := []map[string]any{}
	for rs.Next() {
		vals := make([]any, len(t.Readable))
		ptrs := make([]any, len(vals))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		row := make(map[string]any, len(vals))
		for i, c := range t.Readable {
			row[c.Name] = normalize(vals[i])
		}
		result = append(result, row)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// normalize turns driver values into JSON friendly ones.
func normalize(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	default:
		return v
	}
}

// Package store defines the relational-store boundary: single-row inserts and
// bounded selects against a named table.
package store

import "context"

type Inserter interface {
	Insert(ctx context.Context, table string, fields map[string]any) error
}

type Reader interface {
	// Select returns at most limit rows of table, each keyed by column name.
	Select(ctx context.Context, table string, limit int) ([]map[string]any, error)
}

type Store interface {
	Inserter
	Reader
}

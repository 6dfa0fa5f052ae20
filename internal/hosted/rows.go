package hosted

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func tablePath(table string) string {
	return "/rest/v1/" + url.PathEscape(table)
}

// Insert writes one row and asks the table API not to echo it back.
func (c *Client) Insert(ctx context.Context, table string, fields map[string]any) error {
	hdr := http.Header{"Prefer": {"return=minimal"}}
	r, err := c.do(ctx, "insert", http.MethodPost, tablePath(table), nil, fields, hdr)
	if err != nil {
		return err
	}
	if !r.ok() {
		return fmt.Errorf("insert into %s: %w", table, c.providerError(r))
	}
	return nil
}

// Select reads at most limit rows with every column.
func (c *Client) Select(ctx context.Context, table string, limit int) ([]map[string]any, error) {
	q := url.Values{"select": {"*"}}
	if limit > 0 {
		q.Set("limit", limitQuery(limit))
	}
	r, err := c.do(ctx, "select", http.MethodGet, tablePath(table), q, nil, nil)
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, fmt.Errorf("select from %s: %w", table, c.providerError(r))
	}

	var rows []map[string]any
	if err := decodeJSON(r, &rows); err != nil {
		return nil, fmt.Errorf("select from %s: %w", table, err)
	}
	return rows, nil
}

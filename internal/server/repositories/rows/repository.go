// Package rows provides generic single-row inserts and bounded selects over
// an allowlist of tables.
package rows

import "context"

type Repository interface {
	Insert(ctx context.Context, table string, fields map[string]any) error
	Select(ctx context.Context, table string, limit int) ([]map[string]any, error)
}

// Table describes a table that may be reached through the generic row API.
// Writable lists the columns an insert may set; Readable is the select list,
// in order, with an optional SQL expression per column.
type Table struct {
	Name     string
	Writable []string
	Readable []Column
	OrderBy  string
}

type Column struct {
	Name string
	Expr string
}

func (c Column) sql() string {
	if c.Expr == "" {
		return c.Name
	}
	return c.Expr + " AS " + c.Name
}

// Student is the profile table written by signup.
var Student = Table{
	Name:     "student",
	Writable: []string{"first_name", "last_name", "email_address", "password", "role", "interests", "reg_date"},
	Readable: []Column{
		{Name: "id"},
		{Name: "first_name"},
		{Name: "last_name"},
		{Name: "email_address"},
		{Name: "password"},
		{Name: "role"},
		{Name: "interests"},
		{Name: "reg_date", Expr: "to_char(reg_date, 'YYYY-MM-DD')"},
	},
	OrderBy: "id",
}

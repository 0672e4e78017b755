package store

import (
	"context"
	_ "embed"
	"fmt"
)

var (
	//go:embed sql/emp.sql
	createEmpSQL string

	//go:embed sql/dept.sql
	createDeptSQL string

	//go:embed sql/works.sql
	createWorksSQL string

	//go:embed sql/getnames.sql
	createGetNamesSQL string
)

// Table names in creation order. dept references emp, works references both.
const (
	TableEmp   = "emp"
	TableDept  = "dept"
	TableWorks = "works"
)

var tableStatements = []struct {
	table string
	sql   string
}{
	{TableEmp, createEmpSQL},
	{TableDept, createDeptSQL},
	{TableWorks, createWorksSQL},
}

// Tables returns the table names CreateTables creates, in order.
func Tables() []string {
	names := make([]string, len(tableStatements))
	for i, stmt := range tableStatements {
		names[i] = stmt.table
	}
	return names
}

// CreateTables creates emp, dept and works.
// There is no IF NOT EXISTS guard: running it against a database that
// already has the tables fails on emp.
func CreateTables(ctx context.Context, db DBTX) error {
	for _, stmt := range tableStatements {
		if _, err := db.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create table %s: %w", stmt.table, err)
		}
	}
	return nil
}

// CreateGetNames creates or replaces getnames(minsalary real) RETURNS refcursor.
func CreateGetNames(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, createGetNamesSQL); err != nil {
		return fmt.Errorf("failed to create function getnames: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/vvka-141/emploader/internal/records"
)

const insertEmployeeSQL = `INSERT INTO emp (eid, ename, age, salary) VALUES ($1, $2, $3, $4)`

// InsertEmployee inserts one row into emp.
func InsertEmployee(ctx context.Context, db DBTX, emp records.Employee) error {
	if _, err := db.Exec(ctx, insertEmployeeSQL, emp.EID, emp.Name, emp.Age, emp.Salary); err != nil {
		return fmt.Errorf("failed to insert employee from line %d: %w", emp.Line, err)
	}
	return nil
}

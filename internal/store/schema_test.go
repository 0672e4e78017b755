package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables_CreationOrder(t *testing.T) {
	assert.Equal(t, []string{"emp", "dept", "works"}, Tables())
}

func TestEmbeddedDDL(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		table string
	}{
		{"emp", createEmpSQL, TableEmp},
		{"dept", createDeptSQL, TableDept},
		{"works", createWorksSQL, TableWorks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upper := strings.ToUpper(tt.sql)
			assert.Contains(t, upper, "CREATE TABLE "+strings.ToUpper(tt.table))
			assert.NotContains(t, upper, "IF NOT EXISTS", "a second run must fail on existing tables")
			assert.Contains(t, upper, "PRIMARY KEY")
		})
	}
}

func TestEmbeddedDDL_ForeignKeys(t *testing.T) {
	assert.Contains(t, strings.ToLower(createDeptSQL), "references emp")
	assert.Contains(t, strings.ToLower(createWorksSQL), "references emp")
	assert.Contains(t, strings.ToLower(createWorksSQL), "references dept")
}

func TestEmbeddedGetNames(t *testing.T) {
	upper := strings.ToUpper(createGetNamesSQL)
	assert.Contains(t, upper, "CREATE OR REPLACE FUNCTION GETNAMES(MINSALARY REAL)")
	assert.Contains(t, upper, "RETURNS REFCURSOR")
	assert.Contains(t, upper, "SELECT DISTINCT ENAME")
	assert.Contains(t, upper, "ORDER BY")
	assert.Contains(t, upper, "LANGUAGE PLPGSQL")
}

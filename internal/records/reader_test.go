package records

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/emploader/pkg/emploader"
)

func readAll(t *testing.T, r *Reader) ([]Employee, error) {
	t.Helper()
	var employees []Employee
	for {
		emp, err := r.Next()
		if errors.Is(err, io.EOF) {
			return employees, nil
		}
		if err != nil {
			return employees, err
		}
		employees = append(employees, emp)
	}
}

func TestReader_PreservesFileOrder(t *testing.T) {
	input := "2,Bob,40,80000.00\n1,Alice,30,50000.00\n3,Carol,25,50000.00\n"

	employees, err := readAll(t, NewReader(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, employees, 3)

	names := []string{employees[0].Name, employees[1].Name, employees[2].Name}
	assert.Equal(t, []string{"Bob", "Alice", "Carol"}, names)
	assert.Equal(t, []int{1, 2, 3}, []int{employees[0].Line, employees[1].Line, employees[2].Line})
}

func TestReader_NoTrailingNewline(t *testing.T) {
	employees, err := readAll(t, NewReader(strings.NewReader("1,Alice,30,1\n2,Bob,40,2")))
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func TestReader_EmptyInput(t *testing.T) {
	employees, err := readAll(t, NewReader(strings.NewReader("")))
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestReader_StopsAtMalformedLine(t *testing.T) {
	input := "1,Alice,30,1\n2,Bob,forty,2\n3,Carol,25,3\n"

	employees, err := readAll(t, NewReader(strings.NewReader(input)))
	require.Error(t, err)
	assert.ErrorIs(t, err, emploader.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")
	assert.Len(t, employees, 1)
}

func TestReader_BlankLineIsMalformed(t *testing.T) {
	_, err := readAll(t, NewReader(strings.NewReader("1,Alice,30,1\n\n2,Bob,40,2\n")))
	assert.ErrorIs(t, err, emploader.ErrMalformedRecord)
}

func TestOpen_MissingFile(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, emploader.ErrInputFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_Directory(t *testing.T) {
	f, err := Open(t.TempDir())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, emploader.ErrInputFile)
}

func TestOpen_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,Alice,30,50000.00\n"), 0644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	emp, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, "Alice", emp.Name)

	_, err = f.Next()
	assert.ErrorIs(t, err, io.EOF)
}

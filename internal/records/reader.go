package records

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/emploader/pkg/emploader"
)

// Reader streams Employees from an input file, one line at a time.
// Not safe for concurrent use.
type Reader struct {
	scanner *bufio.Scanner
	lineNo  int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next Employee, or io.EOF once the input is exhausted.
// Read failures wrap emploader.ErrInputFile, parse failures wrap
// emploader.ErrMalformedRecord.
func (r *Reader) Next() (Employee, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Employee{}, fmt.Errorf("%w: after line %d: %w", emploader.ErrInputFile, r.lineNo, err)
		}
		return Employee{}, io.EOF
	}
	r.lineNo++
	return ParseLine(r.scanner.Text(), r.lineNo)
}

// File is a Reader bound to an open file.
type File struct {
	*Reader
	f *os.File
}

// Open opens the employee file at path.
// The caller must Close the returned File.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", emploader.ErrInputFile, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", emploader.ErrInputFile, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", emploader.ErrInputFile, path)
	}

	return &File{Reader: NewReader(f), f: f}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

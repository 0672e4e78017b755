package emploader

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure categories a load can end in.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	err := loader.Load(ctx, config)
//	if errors.Is(err, emploader.ErrSchemaExists) {
//	    // tables were created by an earlier run
//	}
var (
	// ErrInvalidArguments indicates missing or malformed positional arguments.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrInputFile indicates the employee file could not be opened or read.
	ErrInputFile = errors.New("input file unreadable")

	// ErrMalformedRecord indicates a line of the employee file could not be parsed.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrSchemaFailed indicates the table DDL batch failed.
	ErrSchemaFailed = errors.New("schema creation failed")

	// ErrSchemaExists indicates a table already exists in the target database.
	ErrSchemaExists = errors.New("schema already exists")

	// ErrInsertFailed indicates a row insert into emp failed.
	ErrInsertFailed = errors.New("insert failed")

	// ErrDuplicateEmployee indicates an employee id violated the emp primary key.
	ErrDuplicateEmployee = errors.New("duplicate employee id")

	// ErrRoutineFailed indicates creating or calling the stored function failed.
	ErrRoutineFailed = errors.New("routine failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidArguments):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrInputFile):
		return ExitInputFileError
	case errors.Is(err, ErrMalformedRecord):
		return ExitMalformedRecord
	case errors.Is(err, ErrSchemaFailed), errors.Is(err, ErrSchemaExists):
		return ExitSchemaFailed
	case errors.Is(err, ErrInsertFailed), errors.Is(err, ErrDuplicateEmployee):
		return ExitInsertFailed
	case errors.Is(err, ErrRoutineFailed):
		return ExitRoutineFailed
	}

	// cobra reports flag and arity problems as plain errors
	errStr := err.Error()
	for _, pattern := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "invalid argument", "accepts "} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}

package db

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vvka-141/emploader/pkg/emploader"
)

// PostgreSQL error codes the loader reports distinctly.
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation = "23505"
	pgCodeDuplicateTable  = "42P07"

	// Class 08 - Connection Exception
	pgClassConnectionException = "08"
	// Class 57 - Operator Intervention (admin shutdown, crash shutdown, etc.)
	pgClassOperatorIntervention = "57"
)

// Stage identifies which batch of the load an error came from.
type Stage int

const (
	StageSchema  Stage = iota // table DDL
	StageInsert               // emp inserts
	StageRoutine              // getnames creation or call
)

// String returns a human-readable string representation of the Stage.
func (s Stage) String() string {
	switch s {
	case StageSchema:
		return "schema"
	case StageInsert:
		return "insert"
	case StageRoutine:
		return "routine"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

func (s Stage) sentinel() error {
	switch s {
	case StageSchema:
		return emploader.ErrSchemaFailed
	case StageInsert:
		return emploader.ErrInsertFailed
	default:
		return emploader.ErrRoutineFailed
	}
}

// ClassifyError attaches the sentinel matching err to it.
// Duplicate tables and duplicate employee ids get their own sentinels,
// a dropped connection maps to ErrConnectionFailed, and everything else
// maps to the sentinel of the stage it happened in.
func ClassifyError(err error, stage Stage) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgCodeDuplicateTable:
			return fmt.Errorf("%w: %w", emploader.ErrSchemaExists, err)
		case pgErr.Code == pgCodeUniqueViolation && stage == StageInsert:
			return fmt.Errorf("%w: %w", emploader.ErrDuplicateEmployee, err)
		case strings.HasPrefix(pgErr.Code, pgClassConnectionException),
			strings.HasPrefix(pgErr.Code, pgClassOperatorIntervention):
			return fmt.Errorf("%w: %w", emploader.ErrConnectionFailed, err)
		}
		return fmt.Errorf("%w: %w", stage.sentinel(), err)
	}

	if IsConnectionLost(err) {
		return fmt.Errorf("%w: %w", emploader.ErrConnectionFailed, err)
	}

	return fmt.Errorf("%w: %w", stage.sentinel(), err)
}

// IsConnectionLost reports whether err means the server went away mid-run.
func IsConnectionLost(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		if errors.Is(opErr.Err, syscall.ECONNRESET) ||
			errors.Is(opErr.Err, syscall.ECONNREFUSED) ||
			errors.Is(opErr.Err, syscall.EPIPE) {
			return true
		}
	}

	errMsg := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"connection reset",
		"broken pipe",
		"server closed the connection",
		"unexpected eof",
		"conn closed",
	} {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}

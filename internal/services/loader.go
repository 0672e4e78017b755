package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/emploader/internal/db"
	"github.com/vvka-141/emploader/internal/records"
	"github.com/vvka-141/emploader/internal/store"
	"github.com/vvka-141/emploader/pkg/emploader"
)

// ConnectorFactory builds the Connector for a run.
type ConnectorFactory func(*emploader.ConnectionConfig, emploader.Logger) (emploader.Connector, error)

// LoadService implements the Loader interface.
// Thread-Safety: NOT safe for concurrent Load() calls on the same instance
// when they share an output writer.
type LoadService struct {
	connectorFactory ConnectorFactory
	logger           emploader.Logger
	out              io.Writer
}

// NewLoadService creates a new LoadService with all dependencies injected.
// Names reported by getnames are written to out, one per line.
//
// Panics if any dependency is nil; that is a wiring mistake, not a runtime condition.
func NewLoadService(connectorFactory ConnectorFactory, logger emploader.Logger, out io.Writer) *LoadService {
	if connectorFactory == nil {
		panic("connectorFactory cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}

	return &LoadService{
		connectorFactory: connectorFactory,
		logger:           logger,
		out:              out,
	}
}

// Load runs the whole procedure. See Run.
func (s *LoadService) Load(ctx context.Context, config emploader.LoadConfig) error {
	_, err := s.Run(ctx, config)
	return err
}

// Run executes, in order: connect, create tables (commit), insert every
// employee line (commit), create getnames (commit), call getnames and print
// the names. The first failure stops the run; the batch it happened in is
// rolled back and earlier batches stay committed.
func (s *LoadService) Run(ctx context.Context, config emploader.LoadConfig) (emploader.LoadStats, error) {
	var stats emploader.LoadStats

	if err := config.Validate(); err != nil {
		return stats, fmt.Errorf("invalid configuration: %w", err)
	}

	runID := uuid.New()

	connConfig := config.Connection
	if connConfig.AppName == "" {
		connConfig.AppName = emploader.DefaultAppName
	}
	// the server truncates application_name at 63 bytes
	connConfig.AppName = connConfig.AppName + "-" + runID.String()
	s.logger.Verbose("Run %s: loading %s into %s@%s:%d/%s",
		runID, config.InputPath, connConfig.Username, connConfig.Host, connConfig.Port, connConfig.Database)

	conn, err := s.connect(ctx, &connConfig)
	if err != nil {
		return stats, err
	}
	defer func() {
		if closeErr := conn.Close(context.WithoutCancel(ctx)); closeErr != nil {
			s.logger.Error("failed to close connection: %v", closeErr)
		}
	}()

	if err := s.createTables(ctx, conn); err != nil {
		return stats, err
	}

	inserted, err := s.insertEmployees(ctx, conn, config.InputPath)
	if err != nil {
		return stats, err
	}
	stats.Inserted = inserted

	if err := s.createRoutine(ctx, conn); err != nil {
		return stats, err
	}

	printed, err := s.reportNames(ctx, conn, config.SalaryThreshold)
	stats.Printed = printed
	if err != nil {
		return stats, err
	}

	s.logger.Verbose("Run %s: inserted %d employee(s), printed %d name(s)", runID, stats.Inserted, stats.Printed)
	return stats, nil
}

func (s *LoadService) connect(ctx context.Context, connConfig *emploader.ConnectionConfig) (*pgx.Conn, error) {
	s.logger.Verbose("Connecting to database '%s'", connConfig.Database)

	connector, err := s.connectorFactory(connConfig, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create connector: %w", err)
	}

	conn, err := connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", connConfig.Database, err)
	}
	return conn, nil
}

// createTables is the first commit point.
func (s *LoadService) createTables(ctx context.Context, conn *pgx.Conn) error {
	s.logger.Verbose("Creating tables %s...", strings.Join(store.Tables(), ", "))

	err := inTx(ctx, conn, pgx.TxOptions{}, true, func(tx pgx.Tx) error {
		return store.CreateTables(ctx, tx)
	})
	if err != nil {
		return db.ClassifyError(err, db.StageSchema)
	}

	s.logger.Info("✓ Created tables %s", strings.Join(store.Tables(), ", "))
	return nil
}

// insertEmployees is the second commit point. The file is streamed; a bad
// line or a failed insert rolls back every row of the file.
func (s *LoadService) insertEmployees(ctx context.Context, conn *pgx.Conn, path string) (int, error) {
	s.logger.Verbose("Loading employees from %s...", path)

	file, err := records.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	count := 0
	err = inTx(ctx, conn, pgx.TxOptions{}, true, func(tx pgx.Tx) error {
		for {
			emp, err := file.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if err := store.InsertEmployee(ctx, tx, emp); err != nil {
				return err
			}
			count++
		}
	})
	if err != nil {
		return 0, fmt.Errorf("employee load rolled back: %w", classifyUnclassified(err, db.StageInsert))
	}

	s.logger.Info("✓ Inserted %d employee(s) into %s", count, store.TableEmp)
	return count, nil
}

// createRoutine is the third commit point.
func (s *LoadService) createRoutine(ctx context.Context, conn *pgx.Conn) error {
	s.logger.Verbose("Creating function getnames...")

	err := inTx(ctx, conn, pgx.TxOptions{}, true, func(tx pgx.Tx) error {
		return store.CreateGetNames(ctx, tx)
	})
	if err != nil {
		return db.ClassifyError(err, db.StageRoutine)
	}

	s.logger.Info("✓ Created function getnames")
	return nil
}

// reportNames calls getnames in a read-only transaction that is never
// committed and writes each name to s.out.
func (s *LoadService) reportNames(ctx context.Context, conn *pgx.Conn, threshold float32) (int, error) {
	s.logger.Verbose("Calling getnames(%g)...", threshold)

	count := 0
	err := inTx(ctx, conn, pgx.TxOptions{AccessMode: pgx.ReadOnly}, false, func(tx pgx.Tx) error {
		var err error
		count, err = store.CallGetNames(ctx, tx, threshold, func(name string) error {
			if _, err := fmt.Fprintln(s.out, name); err != nil {
				return fmt.Errorf("failed to write name: %w", err)
			}
			return nil
		})
		return err
	})
	if err != nil {
		return count, db.ClassifyError(err, db.StageRoutine)
	}

	return count, nil
}

// inTx runs fn in a transaction. On error, or when commit is false, the
// transaction is rolled back; otherwise it is committed.
func inTx(ctx context.Context, conn *pgx.Conn, opts pgx.TxOptions, commit bool, fn func(pgx.Tx) error) error {
	tx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if !commit {
		return nil
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// classifyUnclassified leaves errors that already carry a loader sentinel
// alone and classifies the rest for stage.
func classifyUnclassified(err error, stage db.Stage) error {
	for _, sentinel := range []error{
		emploader.ErrInputFile,
		emploader.ErrMalformedRecord,
		emploader.ErrInsertFailed,
		emploader.ErrDuplicateEmployee,
		emploader.ErrConnectionFailed,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return db.ClassifyError(err, stage)
}

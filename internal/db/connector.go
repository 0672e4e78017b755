package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vvka-141/emploader/pkg/emploader"
)

// StandardConnector implements the Connector interface for username/password
// authentication over a single connection. It does not retry: a failed
// connection attempt ends the run.
type StandardConnector struct {
	config *emploader.ConnectionConfig
	logger emploader.Logger
}

// NewStandardConnector creates a new StandardConnector with the given configuration.
// Server notices are forwarded to logger as verbose messages.
func NewStandardConnector(config *emploader.ConnectionConfig, logger emploader.Logger) *StandardConnector {
	return &StandardConnector{
		config: config,
		logger: logger,
	}
}

// Connect opens one connection and pings it.
func (c *StandardConnector) Connect(ctx context.Context) (*pgx.Conn, error) {
	connConfig, err := pgx.ParseConfig(BuildConnectionString(c.config))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w: %w", emploader.ErrInvalidConfig, err)
	}

	if c.logger != nil {
		logger := c.logger
		connConfig.OnNotice = func(_ *pgconn.PgConn, notice *pgconn.Notice) {
			logger.Verbose("server %s: %s", strings.ToLower(notice.Severity), notice.Message)
		}
	}

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return nil, wrapConnectionError(err, c.config.Host, c.config.Port, c.config.Database)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(context.Background())
		return nil, wrapConnectionError(err, c.config.Host, c.config.Port, c.config.Database)
	}

	return conn, nil
}

// NewConnector is a factory function that validates config and returns a Connector for it.
func NewConnector(config *emploader.ConnectionConfig, logger emploader.Logger) (emploader.Connector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return NewStandardConnector(config, logger), nil
}

// wrapConnectionError wraps raw pgx connection errors with actionable guidance.
// The result always matches emploader.ErrConnectionFailed.
func wrapConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`%w: connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port
  - Firewall blocking the connection

Original error: %w`, emploader.ErrConnectionFailed, addr, host, port, err)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`%w: cannot resolve host "%s"

Possible causes:
  - Hostname is misspelled
  - DNS is not configured or reachable

Original error: %w`, emploader.ErrConnectionFailed, host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`%w: password authentication failed for database "%s"

Possible causes:
  - Wrong password (check the password argument, $PGPASSWORD or ~/.pgpass)
  - Wrong username
  - User does not have access to the database

Original error: %w`, emploader.ErrConnectionFailed, database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`%w: database "%s" does not exist

To create it:
  createdb %s

Original error: %w`, emploader.ErrConnectionFailed, database, database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`%w: connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Firewall silently dropping packets
  - Wrong host/port (server not listening)

Original error: %w`, emploader.ErrConnectionFailed, addr, err)

	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		return fmt.Errorf(`%w: SSL/TLS connection error

Possible causes:
  - Server requires SSL but --sslmode is wrong
  - Certificate verification failed (try --sslmode=require)

Original error: %w`, emploader.ErrConnectionFailed, err)

	default:
		return fmt.Errorf("%w: failed to connect to database: %w", emploader.ErrConnectionFailed, err)
	}
}

package emploader

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Connector establishes the single database connection a load runs on.
type Connector interface {
	// Connect opens and verifies a connection.
	// The caller closes it when done.
	Connect(ctx context.Context) (*pgx.Conn, error)
}

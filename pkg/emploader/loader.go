package emploader

import "context"

// Loader runs the whole load procedure: schema, rows, routine, report.
type Loader interface {
	// Load executes every step in order and stops at the first failure.
	// Committed batches stay committed; the failing batch is rolled back.
	Load(ctx context.Context, config LoadConfig) error
}

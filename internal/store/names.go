package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const callGetNamesSQL = `SELECT getnames($1)`

// CallGetNames calls getnames(threshold), drains the returned cursor and
// hands each name to fn in cursor order. The cursor is closed on every path.
// It must run inside a transaction: the cursor lives until commit or rollback.
// Returns the number of names passed to fn.
func CallGetNames(ctx context.Context, db DBTX, threshold float32, fn func(name string) error) (count int, err error) {
	var cursor pgtype.Text
	if err := db.QueryRow(ctx, callGetNamesSQL, threshold).Scan(&cursor); err != nil {
		return 0, fmt.Errorf("failed to call getnames: %w", err)
	}
	if !cursor.Valid {
		return 0, fmt.Errorf("getnames returned a NULL cursor")
	}

	cursorName := pgx.Identifier{cursor.String}.Sanitize()
	defer func() {
		_, closeErr := db.Exec(ctx, "CLOSE "+cursorName, pgx.QueryExecModeSimpleProtocol)
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close cursor %s: %w", cursorName, closeErr)
		}
	}()

	rows, err := db.Query(ctx, "FETCH ALL IN "+cursorName, pgx.QueryExecModeSimpleProtocol)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch from cursor %s: %w", cursorName, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name pgtype.Text
		if err := rows.Scan(&name); err != nil {
			return count, fmt.Errorf("failed to scan name: %w", err)
		}
		if err := fn(name.String); err != nil {
			return count, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("failed to fetch from cursor %s: %w", cursorName, err)
	}

	return count, nil
}

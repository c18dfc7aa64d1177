package sqlexec

import (
	"context"
	"database/sql"

	"sql-gateway/pkg/apperr"
)

// Execute runs the query text verbatim and materializes the first result set
// into memory. Column names come from the statement's result metadata.
// Driver failures come back as *apperr.QueryError; the connection itself is
// owned and released by the caller.
func Execute(ctx context.Context, handle *sql.DB, query string, args ...any) (*ResultSet, error) {
	rows, err := handle.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &apperr.QueryError{Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &apperr.QueryError{Err: err}
	}

	rs := &ResultSet{
		Columns: cols,
		Rows:    make([]Row, 0, 64),
	}

	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &apperr.QueryError{Err: err}
		}
		rs.Rows = append(rs.Rows, Row{Columns: rs.Columns, Values: raw})
	}
	if err := rows.Err(); err != nil {
		return nil, &apperr.QueryError{Err: err}
	}

	return rs, nil
}

package schema

import (
	"database/sql"
	"fmt"
	"strings"

	"sql-gateway/pkg/db"
)

// buildSchemaQuery reads the standard column-metadata view of the target
// database, filtered by table and optionally by column. Both filters are
// bound values, never spliced into the text.
func buildSchemaQuery(dialect, table, column string) (string, []any, error) {
	switch strings.ToLower(dialect) {
	case "", db.DialectMSSQL:
		query := "SELECT COLUMN_NAME, DATA_TYPE, CHARACTER_MAXIMUM_LENGTH, IS_NULLABLE " +
			"FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_NAME = @table"
		args := []any{sql.Named("table", table)}
		if column != "" {
			query += " AND COLUMN_NAME = @column"
			args = append(args, sql.Named("column", column))
		}
		return query, args, nil
	case db.DialectHANA:
		query := "SELECT COLUMN_NAME, DATA_TYPE_NAME AS DATA_TYPE, LENGTH AS CHARACTER_MAXIMUM_LENGTH, IS_NULLABLE " +
			"FROM SYS.TABLE_COLUMNS WHERE TABLE_NAME = ?"
		args := []any{table}
		if column != "" {
			query += " AND COLUMN_NAME = ?"
			args = append(args, column)
		}
		return query, args, nil
	default:
		return "", nil, fmt.Errorf("unsupported db dialect: %s", dialect)
	}
}

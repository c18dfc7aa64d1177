package logs

import (
	"database/sql"
	"fmt"
	"strings"

	"sql-gateway/pkg/db"
)

const logTable = "_log_error_sql"

// buildLogQuery selects the top N rows from the error-log table, ordered by
// identifier, optionally filtered by an exact match on the file path. The
// supplied file name is matched after prefixing the fixed installation path.
func buildLogQuery(dialect string, limit int, descending bool, file, pathPrefix string) (string, []any, error) {
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	switch strings.ToLower(dialect) {
	case "", db.DialectMSSQL:
		args := []any{sql.Named("numLogs", limit)}
		where := ""
		if file != "" {
			where = " WHERE CAST(archivo AS varchar(max)) = @archivo"
			args = append(args, sql.Named("archivo", pathPrefix+file))
		}
		query := fmt.Sprintf("SELECT TOP (@numLogs) * FROM %s%s ORDER BY id %s", logTable, where, direction)
		return query, args, nil
	case db.DialectHANA:
		var args []any
		where := ""
		if file != "" {
			where = " WHERE TO_VARCHAR(archivo) = ?"
			args = append(args, pathPrefix+file)
		}
		args = append(args, limit)
		query := fmt.Sprintf("SELECT * FROM %s%s ORDER BY id %s LIMIT ?", logTable, where, direction)
		return query, args, nil
	default:
		return "", nil, fmt.Errorf("unsupported db dialect: %s", dialect)
	}
}

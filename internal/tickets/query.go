package tickets

import (
	"database/sql"
	"fmt"
	"strings"

	"sql-gateway/pkg/db"
)

// Open-ticket statuses: abierto, pendiente, en proceso.
var openStatuses = []string{"A", "P", "E"}

// buildTicketQuery joins the ticket table to the user table on login and
// picks the first non-empty of the two free-text columns in SQL, so the
// caller always gets a string for detalle.
func buildTicketQuery(dialect string, ticket int) (string, []any, error) {
	statusList := "'" + strings.Join(openStatuses, "', '") + "'"

	switch strings.ToLower(dialect) {
	case "", db.DialectMSSQL:
		query := fmt.Sprintf(`SELECT
    T0.id,
    ISNULL(NULLIF(LTRIM(RTRIM(T0.detalle)), ''), ISNULL(NULLIF(LTRIM(RTRIM(T0.observaciones)), ''), '')) AS detalle,
    T1.nombre AS asignado,
    T0.tipo,
    T0.fecha_proceso
FROM _tickets T0
LEFT JOIN _usuarios T1 ON T0.asignado_a = T1.login
WHERE T0.id = @ticket AND T0.estado IN (%s)`, statusList)
		return query, []any{sql.Named("ticket", ticket)}, nil
	case db.DialectHANA:
		query := fmt.Sprintf(`SELECT
    T0.id,
    IFNULL(NULLIF(TRIM(T0.detalle), ''), IFNULL(NULLIF(TRIM(T0.observaciones), ''), '')) AS detalle,
    T1.nombre AS asignado,
    T0.tipo,
    T0.fecha_proceso
FROM _tickets T0
LEFT JOIN _usuarios T1 ON T0.asignado_a = T1.login
WHERE T0.id = ? AND T0.estado IN (%s)`, statusList)
		return query, []any{ticket}, nil
	default:
		return "", nil, fmt.Errorf("unsupported db dialect: %s", dialect)
	}
}

package sqlexec

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Normalize converts every cell of rs into a transport-safe value: strings
// are trimmed, timestamps rendered as ISO-8601 and, when decimals is true,
// fixed-point decimals become floating-point numbers (precision loss past
// float64 is accepted). Unknown cell kinds pass through unchanged, and the
// transformation is idempotent.
func Normalize(rs *ResultSet, decimals bool) []Row {
	out := make([]Row, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		out = append(out, NormalizeRow(row, decimals))
	}
	return out
}

func NormalizeRow(row Row, decimals bool) Row {
	values := make([]any, len(row.Values))
	for i, v := range row.Values {
		values[i] = NormalizeValue(v, decimals)
	}
	return Row{Columns: row.Columns, Values: values}
}

// NormalizeValue coerces one cell. The driver supplies the cell kind at scan
// time; the switch below is the closed set of kinds we transform, everything
// else is returned as-is.
func NormalizeValue(v any, decimals bool) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return strings.TrimSpace(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case []byte:
		if !utf8.Valid(x) {
			return map[string]any{
				"type":   "bytes",
				"base64": base64.StdEncoding.EncodeToString(x),
			}
		}
		s := strings.TrimSpace(string(x))
		// go-mssqldb reports DECIMAL and MONEY cells as their textual bytes.
		if decimals {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
		return s
	default:
		return x
	}
}

package query

import (
	"strings"

	"sql-gateway/pkg/apperr"
)

// ValidateReadOnly rejects anything that is not a single SELECT/WITH
// statement. Only applied to the raw endpoint, and only when the gateway is
// configured read-only.
func ValidateReadOnly(q string) error {
	s := strings.TrimSpace(q)
	if s == "" {
		return apperr.Validation("query is required")
	}

	low := strings.ToLower(s)

	if !(strings.HasPrefix(low, "select") || strings.HasPrefix(low, "with")) {
		return apperr.Validation("only SELECT/WITH queries are allowed")
	}

	if strings.Contains(low, ";") {
		return apperr.Validation("semicolon is not allowed (multi-statement blocked)")
	}
	if strings.Contains(low, "--") || strings.Contains(low, "/*") || strings.Contains(low, "*/") {
		return apperr.Validation("sql comments are not allowed")
	}

	blocked := []string{
		"insert ", "update ", "delete ", "merge ", "truncate ",
		"drop ", "alter ", "create ", "grant ", "revoke ",
		"exec ", "execute ",
		"backup ", "restore ",
		"dbcc ",
		"xp_", "sp_",
		"openrowset", "opendatasource", "bulk ",
	}

	for _, b := range blocked {
		if strings.Contains(low, b) {
			return apperr.Validation("blocked keyword detected: " + strings.TrimSpace(b))
		}
	}

	return nil
}

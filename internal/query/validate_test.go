package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sql-gateway/pkg/apperr"
)

func TestValidateReadOnly(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "plain select", query: "SELECT 1", wantErr: false},
		{name: "cte", query: "WITH x AS (SELECT 1 AS n) SELECT n FROM x", wantErr: false},
		{name: "leading whitespace", query: "   select TOP 3 * from clientes", wantErr: false},
		{name: "empty", query: "   ", wantErr: true},
		{name: "update blocked", query: "UPDATE clientes SET activo = 0", wantErr: true},
		{name: "delete blocked", query: "DELETE FROM clientes", wantErr: true},
		{name: "multi-statement blocked", query: "SELECT 1; DROP TABLE clientes", wantErr: true},
		{name: "comment blocked", query: "SELECT 1 -- oculto", wantErr: true},
		{name: "exec blocked", query: "SELECT 1 WHERE 1=1 exec ('x')", wantErr: true},
		{name: "stored proc prefix blocked", query: "select * from sp_help", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReadOnly(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, apperr.Status(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sql-gateway/configs"
)

func testConfig() *configs.Config {
	return &configs.Config{
		DbConfig: configs.DbConfig{
			Server:       "dbhost",
			Port:         1433,
			Dialect:      "mssql",
			User:         "svc",
			Password:     "svcpass",
			PbaDatabase:  "erp_pba",
			ProdDatabase: "erp_prod",
		},
	}
}

func TestResolve(t *testing.T) {
	targets := NewTargets(testConfig())

	pba := targets.Resolve(false)
	assert.Equal(t, "erp_pba", pba.Database)

	prod := targets.Resolve(true)
	assert.Equal(t, "erp_prod", prod.Database)

	assert.Equal(t, pba.Server, prod.Server)
	assert.Equal(t, pba.Dialect, prod.Dialect)
}

func TestBuildConnString(t *testing.T) {
	tests := []struct {
		name       string
		target     Target
		wantDriver string
		wantParts  []string
		wantErr    bool
	}{
		{
			name:       "mssql",
			target:     Target{Server: "dbhost", Port: 1433, Dialect: "mssql", Database: "erp_pba"},
			wantDriver: "sqlserver",
			wantParts:  []string{"sqlserver://", "dbhost:1433", "database=erp_pba", "encrypt=disable"},
		},
		{
			name:       "empty dialect defaults to mssql",
			target:     Target{Server: "dbhost", Database: "erp_pba"},
			wantDriver: "sqlserver",
			wantParts:  []string{"sqlserver://", "database=erp_pba"},
		},
		{
			name:       "hana",
			target:     Target{Server: "hanahost", Port: 30015, Dialect: "hana", Database: "erp_pba"},
			wantDriver: "hdb",
			wantParts:  []string{"hdb://", "hanahost:30015", "databaseName=erp_pba"},
		},
		{
			name:    "missing database",
			target:  Target{Server: "dbhost"},
			wantErr: true,
		},
		{
			name:    "unknown dialect",
			target:  Target{Server: "dbhost", Database: "x", Dialect: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverName, connStr, err := buildConnString(tt.target, "ana", "clave")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, driverName)
			for _, part := range tt.wantParts {
				assert.Contains(t, connStr, part)
			}
			assert.Contains(t, connStr, "ana:clave@")
		})
	}
}

package db

import "sql-gateway/configs"

const (
	DialectMSSQL = "mssql"
	DialectHANA  = "hana"
)

// Target identifies one addressable database. Immutable once constructed.
type Target struct {
	Server   string
	Port     int
	Dialect  string
	Database string
}

// Targets holds the two pre-declared targets.
type Targets struct {
	pba  Target
	prod Target
}

func NewTargets(cfg *configs.Config) *Targets {
	base := Target{
		Server:  cfg.DbConfig.Server,
		Port:    cfg.DbConfig.Port,
		Dialect: cfg.DbConfig.Dialect,
	}
	pba := base
	pba.Database = cfg.DbConfig.PbaDatabase
	prod := base
	prod.Database = cfg.DbConfig.ProdDatabase
	return &Targets{pba: pba, prod: prod}
}

// Resolve maps the caller-supplied flag to a target: true selects production,
// false the PBA (staging) database. All endpoints share this polarity.
func (t *Targets) Resolve(useProd bool) Target {
	if useProd {
		return t.prod
	}
	return t.pba
}

package pipeline

import (
	"context"
	"database/sql"
	"log"
	"time"

	"sql-gateway/configs"
	"sql-gateway/internal/access"
	"sql-gateway/internal/sqlexec"
	"sql-gateway/pkg/audit"
	"sql-gateway/pkg/db"
)

// Pipeline is the shared execution path behind every query endpoint:
// authorize, resolve the target, acquire one connection, execute, normalize,
// release. The two deployment variants (fixed service credential vs
// credential forwarding) are the same pipeline with Forward toggled.
type Pipeline struct {
	targets   *db.Targets
	connector *db.Connector
	policy    *access.Policy
	forward   bool
	timeout   time.Duration
	recorder  audit.Recorder
}

// Request carries the per-call inputs common to all endpoints.
type Request struct {
	Endpoint string
	UseProd  bool
	User     string
	Password string
}

func New(cfg *configs.Config, targets *db.Targets, connector *db.Connector, recorder audit.Recorder) *Pipeline {
	p := &Pipeline{
		targets:   targets,
		connector: connector,
		forward:   cfg.AuthForward,
		timeout:   cfg.QueryTimeout,
		recorder:  recorder,
	}
	if cfg.AuthForward {
		p.policy = access.NewPolicy(cfg.Denylist)
	}
	return p
}

// Execute runs one query through the full pipeline and returns the raw
// result set. The identity gate runs only in the credential-forwarding
// variant, and always before any connection is opened.
func (p *Pipeline) Execute(ctx context.Context, req Request, query string, args ...any) (*sqlexec.ResultSet, error) {
	if p.policy != nil {
		if err := p.policy.Authorize(req.User, req.Password); err != nil {
			return nil, err
		}
	}

	target := p.targets.Resolve(req.UseProd)

	user, password := "", ""
	if p.forward {
		user, password = req.User, req.Password
	}

	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var rs *sqlexec.ResultSet
	start := time.Now()
	err := p.connector.WithConnection(cctx, target, user, password, func(handle *sql.DB) error {
		var execErr error
		rs, execErr = sqlexec.Execute(cctx, handle, query, args...)
		return execErr
	})
	p.record(ctx, req, target, query, start, err)

	if err != nil {
		log.Printf("%s: query failed on %s: %v", req.Endpoint, target.Database, err)
		return nil, err
	}
	return rs, nil
}

// Run is Execute plus normalization.
func (p *Pipeline) Run(ctx context.Context, req Request, decimals bool, query string, args ...any) ([]sqlexec.Row, error) {
	rs, err := p.Execute(ctx, req, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlexec.Normalize(rs, decimals), nil
}

// Dialect exposes the resolved target's dialect so endpoints can build
// dialect-specific query text.
func (p *Pipeline) Dialect(useProd bool) string {
	return p.targets.Resolve(useProd).Dialect
}

func (p *Pipeline) record(ctx context.Context, req Request, target db.Target, query string, start time.Time, err error) {
	entry := audit.Entry{
		Endpoint:   req.Endpoint,
		User:       req.User,
		Database:   target.Database,
		Query:      query,
		DurationMs: time.Since(start).Milliseconds(),
		Status:     "ok",
		At:         start,
	}
	if err != nil {
		entry.Status = "error"
		entry.Error = err.Error()
	}
	p.recorder.Record(ctx, entry)
}

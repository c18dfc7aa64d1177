package query

import (
	"context"
	"strings"

	"sql-gateway/configs"
	"sql-gateway/internal/pipeline"
	"sql-gateway/internal/sqlexec"
	"sql-gateway/pkg/apperr"
)

type Service struct {
	pipeline *pipeline.Pipeline
	readOnly bool
}

func NewService(cfg *configs.Config, p *pipeline.Pipeline) *Service {
	return &Service{
		pipeline: p,
		readOnly: cfg.ReadOnly,
	}
}

// Run executes caller-supplied query text verbatim against the resolved
// target. No statement-type restriction applies unless the gateway is
// configured read-only.
func (s *Service) Run(ctx context.Context, dto *QueryRequest) ([]sqlexec.Row, error) {
	if strings.TrimSpace(dto.Query) == "" {
		return nil, apperr.Validation("query is required")
	}
	if s.readOnly {
		if err := ValidateReadOnly(dto.Query); err != nil {
			return nil, err
		}
	}

	req := pipeline.Request{
		Endpoint: "sqlQuery",
		UseProd:  dto.UseProdDB,
		User:     dto.User,
		Password: dto.Password,
	}
	return s.pipeline.Run(ctx, req, true, dto.Query)
}

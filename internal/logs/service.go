package logs

import (
	"context"

	"sql-gateway/configs"
	"sql-gateway/internal/pipeline"
	"sql-gateway/internal/sqlexec"
	"sql-gateway/pkg/apperr"
)

type Service struct {
	pipeline   *pipeline.Pipeline
	pathPrefix string
}

func NewService(cfg *configs.Config, p *pipeline.Pipeline) *Service {
	return &Service{
		pipeline:   p,
		pathPrefix: cfg.LogPathPrefix,
	}
}

// Run fetches the top N error-log rows. The decimal normalization rule is
// off here: log rows get only trimming and timestamp rendering.
func (s *Service) Run(ctx context.Context, dto *LogRequest) ([]sqlexec.Row, error) {
	limit := dto.Limit()
	if limit < 0 {
		return nil, apperr.Validation("num_logs must be >= 0")
	}

	query, args, err := buildLogQuery(s.pipeline.Dialect(dto.UseProdDB), limit, dto.Descending(), dto.File, s.pathPrefix)
	if err != nil {
		return nil, err
	}

	req := pipeline.Request{
		Endpoint: "sqlLog",
		UseProd:  dto.UseProdDB,
		User:     dto.User,
		Password: dto.Password,
	}
	return s.pipeline.Run(ctx, req, false, query, args...)
}

package tickets

import (
	"context"
	"strconv"
	"time"

	"sql-gateway/configs"
	"sql-gateway/internal/pipeline"
	"sql-gateway/internal/sqlexec"
	"sql-gateway/pkg/apperr"
)

type Service struct {
	pipeline *pipeline.Pipeline
	baseURL  string
	now      func() time.Time
}

func NewService(cfg *configs.Config, p *pipeline.Pipeline) *Service {
	return &Service{
		pipeline: p,
		baseURL:  cfg.TicketBaseURL,
		now:      time.Now,
	}
}

// Run fetches one open ticket. A missing open ticket is an empty array, not
// an error. Every row gains a computed elapsed-time string and a deep link
// into the ticket viewer.
func (s *Service) Run(ctx context.Context, dto *TicketRequest) ([]sqlexec.Row, error) {
	if dto.Ticket == nil {
		return nil, apperr.Validation("Falta el parámetro 'ticket'")
	}

	query, args, err := buildTicketQuery(s.pipeline.Dialect(dto.UseProdDB), *dto.Ticket)
	if err != nil {
		return nil, err
	}

	req := pipeline.Request{
		Endpoint: "infoTicket",
		UseProd:  dto.UseProdDB,
		User:     dto.User,
		Password: dto.Password,
	}
	rs, err := s.pipeline.Execute(ctx, req, query, args...)
	if err != nil {
		return nil, err
	}

	link := s.baseURL + strconv.Itoa(*dto.Ticket)
	now := s.now()

	out := make([]sqlexec.Row, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		elapsed := ""
		if processed, ok := processTime(row); ok {
			elapsed = ElapsedSince(processed, now)
		}

		shaped := sqlexec.NormalizeRow(row, true)
		shaped.Columns = append(append([]string{}, shaped.Columns...), "tiempo_transcurrido", "ticket_link")
		shaped.Values = append(append([]any{}, shaped.Values...), elapsed, link)
		out = append(out, shaped)
	}
	return out, nil
}

// processTime reads the raw fecha_proceso cell before normalization turns
// it into a string.
func processTime(row sqlexec.Row) (time.Time, bool) {
	v, ok := row.Get("fecha_proceso")
	if !ok {
		return time.Time{}, false
	}
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, x); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

package schema

import (
	"context"
	"strings"

	"sql-gateway/internal/pipeline"
	"sql-gateway/internal/sqlexec"
	"sql-gateway/pkg/apperr"
)

type Service struct {
	pipeline *pipeline.Pipeline
}

func NewService(p *pipeline.Pipeline) *Service {
	return &Service{pipeline: p}
}

// Run fetches column metadata for one table and re-keys each row into the
// four fixed output fields. The table name is required and checked before
// anything touches the database.
func (s *Service) Run(ctx context.Context, dto *TableInfoRequest) ([]ColumnInfo, error) {
	if dto.Table == "" {
		return nil, apperr.Validation("Falta el parámetro 'table'")
	}

	query, args, err := buildSchemaQuery(s.pipeline.Dialect(dto.UseProdDB), dto.Table, dto.Column)
	if err != nil {
		return nil, err
	}

	req := pipeline.Request{
		Endpoint: "tableInfo",
		UseProd:  dto.UseProdDB,
		User:     dto.User,
		Password: dto.Password,
	}
	rows, err := s.pipeline.Run(ctx, req, true, query, args...)
	if err != nil {
		return nil, err
	}

	fields := make([]ColumnInfo, 0, len(rows))
	for _, row := range rows {
		length, _ := row.Get("CHARACTER_MAXIMUM_LENGTH")
		fields = append(fields, ColumnInfo{
			Name:     stringValue(row, "COLUMN_NAME"),
			Type:     stringValue(row, "DATA_TYPE"),
			Length:   length,
			Nullable: nullableToken(stringValue(row, "IS_NULLABLE")),
		})
	}
	return fields, nil
}

func stringValue(row sqlexec.Row, column string) string {
	v, ok := row.Get(column)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// nullableToken localizes the metadata view's yes/no marker. SQL Server
// reports YES/NO, HANA reports TRUE/FALSE.
func nullableToken(value string) string {
	switch strings.ToUpper(value) {
	case "YES", "TRUE":
		return "Si"
	default:
		return "No"
	}
}

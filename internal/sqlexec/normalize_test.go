package sqlexec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue(t *testing.T) {
	stamp := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		decimals bool
		want     any
	}{
		{
			name:  "nil passes through",
			value: nil,
			want:  nil,
		},
		{
			name:  "string is trimmed",
			value: "  hola  ",
			want:  "hola",
		},
		{
			name:  "clean string unchanged",
			value: "hola",
			want:  "hola",
		},
		{
			name:  "timestamp rendered as ISO-8601",
			value: stamp,
			want:  "2024-05-17T09:30:00Z",
		},
		{
			name:     "decimal bytes become float when rule is on",
			value:    []byte("123.450"),
			decimals: true,
			want:     123.45,
		},
		{
			name:     "decimal bytes stay textual when rule is off",
			value:    []byte("123.450"),
			decimals: false,
			want:     "123.450",
		},
		{
			name:     "non-numeric bytes become trimmed string",
			value:    []byte("  texto  "),
			decimals: true,
			want:     "texto",
		},
		{
			name:  "integer passes through",
			value: int64(42),
			want:  int64(42),
		},
		{
			name:  "bool passes through",
			value: true,
			want:  true,
		},
		{
			name:  "float passes through",
			value: 3.14,
			want:  3.14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeValue(tt.value, tt.decimals))
		})
	}
}

func TestNormalizeValueBinary(t *testing.T) {
	got := NormalizeValue([]byte{0xff, 0xfe, 0x00}, true)
	envelope, ok := got.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "bytes", envelope["type"])
	assert.NotEmpty(t, envelope["base64"])
}

func TestNormalizeIdempotent(t *testing.T) {
	rs := &ResultSet{
		Columns: []string{"a", "b", "c", "d"},
		Rows: []Row{
			{
				Columns: []string{"a", "b", "c", "d"},
				Values:  []any{"  padded ", time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC), []byte("9.5"), nil},
			},
		},
	}

	once := Normalize(rs, true)
	twice := Normalize(&ResultSet{Columns: rs.Columns, Rows: once}, true)
	assert.Equal(t, once, twice)
}

func TestNormalizePreservesRowOrder(t *testing.T) {
	rs := &ResultSet{
		Columns: []string{"z", "a"},
		Rows: []Row{
			{Columns: []string{"z", "a"}, Values: []any{int64(1), " x"}},
			{Columns: []string{"z", "a"}, Values: []any{int64(2), " y"}},
		},
	}

	rows := Normalize(rs, false)
	assert.Len(t, rows, 2)
	assert.Equal(t, []any{int64(1), "x"}, rows[0].Values)
	assert.Equal(t, []any{int64(2), "y"}, rows[1].Values)
}

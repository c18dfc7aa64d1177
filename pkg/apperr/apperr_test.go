package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: Validation("falta algo"), want: http.StatusBadRequest},
		{name: "authorization", err: Authorization("denegado"), want: http.StatusForbidden},
		{name: "connection", err: &ConnectionError{Err: errors.New("down")}, want: http.StatusInternalServerError},
		{name: "query", err: &QueryError{Err: errors.New("syntax")}, want: http.StatusInternalServerError},
		{name: "wrapped validation", err: fmt.Errorf("context: %w", Validation("x")), want: http.StatusBadRequest},
		{name: "unknown", err: errors.New("otro"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestQueryErrorSurfacesDriverMessage(t *testing.T) {
	driverErr := errors.New("Invalid object name 'NoExiste'")
	err := &QueryError{Err: driverErr}
	assert.Equal(t, driverErr.Error(), err.Error())
	assert.ErrorIs(t, err, driverErr)
}

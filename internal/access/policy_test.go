package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sql-gateway/pkg/apperr"
)

func TestAuthorize(t *testing.T) {
	policy := NewPolicy([]string{"intruso", "baja.temporal"})

	tests := []struct {
		name       string
		user       string
		password   string
		wantStatus int
	}{
		{name: "allowed user", user: "ana", password: "secreto", wantStatus: 0},
		{name: "missing user", user: "", password: "secreto", wantStatus: 400},
		{name: "missing password", user: "ana", password: "", wantStatus: 400},
		{name: "denylisted user", user: "intruso", password: "secreto", wantStatus: 403},
		{name: "match is exact", user: "intruso2", password: "secreto", wantStatus: 0},
		{name: "no case folding", user: "Intruso", password: "secreto", wantStatus: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Authorize(tt.user, tt.password)
			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantStatus, apperr.Status(err))
		})
	}
}

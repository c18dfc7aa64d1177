package req

import (
	"encoding/json"
	"net/http"

	"sql-gateway/pkg/res"
)

// HandleBody decodes the request body into T. On a decode failure it writes
// the 400 response itself and returns the error so the handler can just return.
func HandleBody[T any](w *http.ResponseWriter, r *http.Request) (*T, error) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		res.Json(*w, map[string]any{"error": "invalid json body"}, http.StatusBadRequest)
		return nil, err
	}
	return &body, nil
}

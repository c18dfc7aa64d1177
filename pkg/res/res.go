package res

import (
	"encoding/json"
	"log"
	"net/http"

	"sql-gateway/pkg/apperr"
)

func Json(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// Error renders err as {"error": message} with the status from the taxonomy.
func Error(w http.ResponseWriter, err error) {
	Json(w, map[string]any{"error": err.Error()}, apperr.Status(err))
}

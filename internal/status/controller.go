package status

import (
	"net/http"

	"sql-gateway/pkg/res"
)

type Controller struct{}

func NewController(router *http.ServeMux) *Controller {
	c := &Controller{}
	router.Handle("GET /api/status", c.Get())
	return c
}

// Get reports liveness. It never touches a database.
func (c *Controller) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]string{"status": "OK"}, http.StatusOK)
	}
}

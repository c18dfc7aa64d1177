package tickets

import (
	"net/http"

	"sql-gateway/internal/sqlexec"
	"sql-gateway/pkg/req"
	"sql-gateway/pkg/res"
)

type ControllerDeps struct {
	*Service
}

type Controller struct {
	*Service
}

func NewController(router *http.ServeMux, deps ControllerDeps) *Controller {
	c := &Controller{Service: deps.Service}
	router.Handle("POST /api/infoTicket", c.Run())
	return c
}

func (c *Controller) Run() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := req.HandleBody[TicketRequest](&w, r)
		if err != nil {
			return
		}

		rows, err := c.Service.Run(r.Context(), body)
		if err != nil {
			res.Error(w, err)
			return
		}
		if rows == nil {
			rows = []sqlexec.Row{}
		}
		res.Json(w, rows, http.StatusOK)
	}
}

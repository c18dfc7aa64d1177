package schema

import (
	"net/http"
	"strconv"
	"strings"

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
	router.Handle("GET /api/tableInfo", c.Run())
	return c
}

func (c *Controller) Run() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()

		useProd, _ := strconv.ParseBool(values.Get("use_prod_db"))
		dto := &TableInfoRequest{
			Table:     strings.TrimSpace(values.Get("table")),
			Column:    strings.TrimSpace(values.Get("column")),
			UseProdDB: useProd,
			User:      values.Get("user"),
			Password:  values.Get("password"),
		}

		fields, err := c.Service.Run(r.Context(), dto)
		if err != nil {
			res.Error(w, err)
			return
		}
		if fields == nil {
			fields = []ColumnInfo{}
		}
		res.Json(w, fields, http.StatusOK)
	}
}

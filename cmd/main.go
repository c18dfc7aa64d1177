package main

import (
	"fmt"
	"log"
	"net/http"

	"sql-gateway/configs"
	"sql-gateway/internal/logs"
	"sql-gateway/internal/pipeline"
	"sql-gateway/internal/query"
	"sql-gateway/internal/schema"
	"sql-gateway/internal/status"
	"sql-gateway/internal/tickets"
	"sql-gateway/pkg/audit"
	"sql-gateway/pkg/db"
	"sql-gateway/pkg/httplog"
)

func App(conf *configs.Config) http.Handler {
	targets := db.NewTargets(conf)
	connector := db.NewConnector(conf)
	recorder := audit.NewRecorder(conf)

	pipe := pipeline.New(conf, targets, connector, recorder)

	router := http.NewServeMux()

	// services
	queryService := query.NewService(conf, pipe)
	logsService := logs.NewService(conf, pipe)
	schemaService := schema.NewService(pipe)
	ticketsService := tickets.NewService(conf, pipe)

	// controllers
	query.NewController(router, query.ControllerDeps{Service: queryService})
	logs.NewController(router, logs.ControllerDeps{Service: logsService})
	schema.NewController(router, schema.ControllerDeps{Service: schemaService})
	tickets.NewController(router, tickets.ControllerDeps{Service: ticketsService})
	status.NewController(router)

	return httplog.Wrap(router)
}

func main() {
	conf := configs.LoadConfig()
	app := App(conf)
	server := http.Server{
		Addr:    conf.Addr,
		Handler: app,
	}
	fmt.Println("Server is listening on", conf.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

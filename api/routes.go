package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	analyticshandler "github.com/altamira-networks/expense-server/internal/handlers/v1/analytics"
	expensehandler "github.com/altamira-networks/expense-server/internal/handlers/v1/expense"
	"github.com/altamira-networks/expense-server/internal/handlers/v1/status"
	"github.com/altamira-networks/expense-server/internal/logging"
	"github.com/altamira-networks/expense-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	apiMux := http.NewServeMux()
	humaAPI := humago.New(apiMux, huma.DefaultConfig("Expense Server", "1.0.0"))

	expensehandler.NewCreateExpenseHandler(r.Service.Expense).Register(humaAPI)
	expensehandler.NewGetExpenseHandler(r.Service.Expense).Register(humaAPI)
	expensehandler.NewListExpensesHandler(r.Service.Expense).Register(humaAPI)
	expensehandler.NewRecategorizeExpenseHandler(r.Service.Expense).Register(humaAPI)
	expensehandler.NewSuggestCategoriesHandler(r.Service.Expense).Register(humaAPI)

	analyticshandler.NewSummaryHandler(r.Service.Analytics).Register(humaAPI)
	analyticshandler.NewTrendsHandler(r.Service.Analytics).Register(humaAPI)
	analyticshandler.NewUnusualSpendingHandler(r.Service.Analytics).Register(humaAPI)
	analyticshandler.NewRecommendationsHandler(r.Service.Analytics).Register(humaAPI)

	statusHandler := status.NewHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/v1/", logging.Middleware(r.Logger, apiMux))
	mux.Handle("/openapi.json", apiMux)
	mux.Handle("/openapi.yaml", apiMux)
	mux.Handle("/docs", apiMux)
	mux.Handle("/schemas/", apiMux)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

package http

import (
	_ "embed"
	"net/http"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/delivery/http/handler"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/delivery/http/middleware"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/pkg/response"

	"github.com/gorilla/mux"
)

//go:embed web/index.html
var indexHTML []byte

type Router struct {
	router            *mux.Router
	dashboardHandler  *handler.DashboardHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	dashboardHandler *handler.DashboardHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		dashboardHandler:  dashboardHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// UI shell
	r.router.HandleFunc("/", r.index).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Dashboard routes
	api.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)
	// OPTIONS is routed so the CORS middleware can answer preflight requests
	api.HandleFunc("/dashboard", r.dashboardHandler.FilterDashboard).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/dashboard/filters", r.dashboardHandler.GetFilterOptions).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/export", r.dashboardHandler.ExportDashboard).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})

	// Add middleware
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func (r *Router) index(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}

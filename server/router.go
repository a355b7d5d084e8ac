package server

import (
	"hotel-forecast/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	forecastHandler *handlers.ForecastHandler
	pageHandler     *handlers.PageHandler
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	forecastHandler *handlers.ForecastHandler,
	pageHandler *handlers.PageHandler,
	router *mux.Router) *Router {
	return &Router{
		forecastHandler: forecastHandler,
		pageHandler:     pageHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// dashboard pages, {tab} is one of summary, detail, insights
	r.router.HandleFunc("/", r.pageHandler.GetIndex).Methods("GET")
	r.router.HandleFunc("/tabs/{"+handlers.TAB_PATH_VAR+"}", r.pageHandler.GetTab).Methods("GET")

	r.router.HandleFunc("/v1/dashboard", r.forecastHandler.GetDashboard).Methods("GET")
	r.router.HandleFunc("/v1/forecast/summary", r.forecastHandler.GetSummary).Methods("GET")
	r.router.HandleFunc("/v1/forecast/chart", r.forecastHandler.GetChart).Methods("GET")
	r.router.HandleFunc("/v1/forecast/weekly", r.forecastHandler.GetWeekly).Methods("GET")
	r.router.HandleFunc("/v1/forecast/extremes", r.forecastHandler.GetExtremes).Methods("GET")
	r.router.HandleFunc("/v1/forecast/records", r.forecastHandler.GetRecords).Methods("GET")

	// expects optional ?window={days(int)}
	r.router.HandleFunc("/v1/history", r.forecastHandler.GetHistory).Methods("GET")

	r.router.HandleFunc("/v1/cache/clear", r.forecastHandler.ClearCache).Methods("POST")

	r.router.HandleFunc("/ping", r.forecastHandler.Ping).Methods("GET")
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"hotel-forecast/logger"
	"hotel-forecast/models"
)

const WINDOW_QUERY_ARG = "window"

var log = logger.New("ForecastHandler")

// DashboardProvider runs render cycles and their narrow views.
type DashboardProvider interface {
	Build(ctx context.Context) (*models.Dashboard, error)
	Summary(ctx context.Context) (models.SummaryMetrics, error)
	History(ctx context.Context, window int) ([]models.DailyBookingRecord, error)
	HistoryWindow() int
	Chart(ctx context.Context) (models.ChartSeries, error)
	Weekly(ctx context.Context) ([]models.WeeklyBucket, error)
	Extremes(ctx context.Context) (models.Extremes, error)
	Records(ctx context.Context) ([]models.ForecastRecord, error)
}

// CacheClearer drops every cached table pair.
type CacheClearer interface {
	Clear() (int, error)
}

// ForecastHandler serves the JSON API.
type ForecastHandler struct {
	dashboard DashboardProvider
	cache     CacheClearer
}

func NewForecastHandler(dashboard DashboardProvider, cache CacheClearer) *ForecastHandler {
	return &ForecastHandler{dashboard: dashboard, cache: cache}
}

// GetDashboard handles GET /v1/dashboard
func (h *ForecastHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard.Build(r.Context())
	h.respond(w, r, d, err)
}

// GetSummary handles GET /v1/forecast/summary
func (h *ForecastHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	h.respond(w, r, summary, err)
}

// GetChart handles GET /v1/forecast/chart
func (h *ForecastHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.dashboard.Chart(r.Context())
	h.respond(w, r, chart, err)
}

// GetWeekly handles GET /v1/forecast/weekly
func (h *ForecastHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	weekly, err := h.dashboard.Weekly(r.Context())
	h.respond(w, r, weekly, err)
}

// GetExtremes handles GET /v1/forecast/extremes
func (h *ForecastHandler) GetExtremes(w http.ResponseWriter, r *http.Request) {
	extremes, err := h.dashboard.Extremes(r.Context())
	h.respond(w, r, extremes, err)
}

// GetRecords handles GET /v1/forecast/records
func (h *ForecastHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.dashboard.Records(r.Context())
	h.respond(w, r, records, err)
}

// GetHistory handles GET /v1/history, optionally with ?window={days(int)}
func (h *ForecastHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	window := h.dashboard.HistoryWindow()
	if v := r.URL.Query().Get(WINDOW_QUERY_ARG); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   ERR_BAD_REQUEST,
				Message: "Invalid argument " + WINDOW_QUERY_ARG,
			})
			return
		}
		window = parsed
	}

	history, err := h.dashboard.History(r.Context(), window)
	h.respond(w, r, history, err)
}

// ClearCache handles POST /v1/cache/clear
func (h *ForecastHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	removed, err := h.cache.Clear()
	h.respond(w, r, map[string]int{"cleared": removed}, err)
}

// Ping handles GET /ping
func (h *ForecastHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *ForecastHandler) respond(w http.ResponseWriter, r *http.Request, body interface{}, err error) {
	if err != nil {
		code, status := classify(err)
		log.Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		writeJSON(w, status, ErrorResponse{Error: code, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("Error encoding response: %v", err)
	}
}

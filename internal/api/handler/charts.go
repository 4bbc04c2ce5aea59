package handler

import (
	"bytes"
	"net/http"

	"github.com/aireclaro/aireclaro/internal/api/response"
	"github.com/aireclaro/aireclaro/internal/charts"
)

// ChartsHandler renders the dashboard series as standalone PNG images.
type ChartsHandler struct {
	service DashboardService
}

// NewChartsHandler creates a new ChartsHandler.
func NewChartsHandler(service DashboardService) *ChartsHandler {
	return &ChartsHandler{service: service}
}

// HistoricalPNG handles GET /api/charts/historical.png - the 7 day NO2 trend.
func (h *ChartsHandler) HistoricalPNG(w http.ResponseWriter, r *http.Request) {
	lat, lon, fieldErrors := parseCoordinates(r)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "lat and lon are required query parameters", fieldErrors)
		return
	}

	payload, err := h.service.GetDashboard(r.Context(), lat, lon)
	if err != nil {
		writeDashboardError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := charts.HistoricalPNG(&buf, payload.VisualizationData.HistoricalTrend); err != nil {
		response.InternalError(w, r, "failed to render historical chart")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	response.PNG(w, r, buf.Bytes())
}

// ForecastPNG handles GET /api/charts/forecast.png - the 24 hour NO2 forecast.
func (h *ChartsHandler) ForecastPNG(w http.ResponseWriter, r *http.Request) {
	lat, lon, fieldErrors := parseCoordinates(r)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "lat and lon are required query parameters", fieldErrors)
		return
	}

	payload, err := h.service.GetDashboard(r.Context(), lat, lon)
	if err != nil {
		writeDashboardError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := charts.ForecastPNG(&buf, payload.VisualizationData.Forecast); err != nil {
		response.InternalError(w, r, "failed to render forecast chart")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	response.PNG(w, r, buf.Bytes())
}

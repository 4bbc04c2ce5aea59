// Package handler provides HTTP handlers for the AireClaro API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/aireclaro/aireclaro/internal/api/models"
	"github.com/aireclaro/aireclaro/internal/api/response"
	"github.com/aireclaro/aireclaro/internal/dashboard"
)

// DashboardService produces the dashboard payload for a coordinate.
type DashboardService interface {
	GetDashboard(ctx context.Context, lat, lon float64) (*dashboard.Payload, error)
}

// DashboardHandler handles the dashboard JSON endpoint.
type DashboardHandler struct {
	service DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard handles GET /api/dashboard - the full dashboard payload.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Cache-Control", "public, max-age=60")
	response.JSON(w, r, http.StatusOK, payload)
}

// parseCoordinates extracts and validates the lat/lon query parameters.
func parseCoordinates(r *http.Request) (lat, lon float64, fieldErrors []models.FieldError) {
	q := r.URL.Query()

	lat, fieldErrors = parseCoordinate(q.Get("lat"), "lat", fieldErrors)
	lon, fieldErrors = parseCoordinate(q.Get("lon"), "lon", fieldErrors)

	return lat, lon, fieldErrors
}

func parseCoordinate(raw, field string, fieldErrors []models.FieldError) (float64, []models.FieldError) {
	if raw == "" {
		return 0, append(fieldErrors, models.FieldError{Field: field, Message: "required"})
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, append(fieldErrors, models.FieldError{Field: field, Message: "must be a number"})
	}
	return v, fieldErrors
}

// writeDashboardError maps service errors onto problem responses.
func writeDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dashboard.ErrInvalidCoordinates):
		response.BadRequest(w, r, "coordinates out of range", []models.FieldError{
			{Field: "lat", Message: "must be between -90 and 90"},
			{Field: "lon", Message: "must be between -180 and 180"},
		})
	case errors.Is(err, dashboard.ErrUpstreamUnavailable):
		response.BadGateway(w, r, "air quality providers are unavailable")
	default:
		response.InternalError(w, r, "failed to build dashboard")
	}
}

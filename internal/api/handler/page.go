package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aireclaro/aireclaro/internal/api/response"
	"github.com/aireclaro/aireclaro/internal/dashboard"
	"github.com/aireclaro/aireclaro/internal/recommend"
	"github.com/aireclaro/aireclaro/internal/view"
)

// Banner messages shown above the form. The page stays at 200 for these; the
// form flow is not an API error surface.
const (
	bannerMissingCoordinates = "Ingresa latitud y longitud para consultar la calidad del aire."
	bannerInvalidCoordinates = "Latitud y longitud deben ser números válidos."
	bannerOutOfRange         = "Las coordenadas están fuera del rango válido."
	bannerServiceFailure     = "No se pudo obtener la información de calidad del aire. Intenta de nuevo."
)

// PageHandler serves the server-rendered dashboard pages.
type PageHandler struct {
	service  DashboardService
	renderer *view.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(service DashboardService, renderer *view.Renderer) *PageHandler {
	return &PageHandler{service: service, renderer: renderer}
}

// Home handles GET / - the empty dashboard form.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.renderer.Page(view.PageData{Persona: recommend.PersonaChildren})
	if err != nil {
		response.InternalError(w, r, "failed to render page")
		return
	}
	response.HTML(w, r, http.StatusOK, page)
}

// Dashboard handles GET /dashboard - the rendered dashboard view.
// Coordinates arrive as raw form strings; blank input re-renders the form
// with a banner and never touches the upstream providers.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	latRaw := q.Get("lat")
	lonRaw := q.Get("lon")

	persona := recommend.Persona(q.Get("persona"))
	if !persona.Selectable() {
		persona = recommend.PersonaChildren
	}

	data := view.PageData{Lat: latRaw, Lon: lonRaw, Persona: persona}

	if latRaw == "" || lonRaw == "" {
		h.renderForm(w, r, data, bannerMissingCoordinates)
		return
	}

	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lon, lonErr := strconv.ParseFloat(lonRaw, 64)
	if latErr != nil || lonErr != nil {
		h.renderForm(w, r, data, bannerInvalidCoordinates)
		return
	}

	payload, err := h.service.GetDashboard(r.Context(), lat, lon)
	if err != nil {
		msg := bannerServiceFailure
		if errors.Is(err, dashboard.ErrInvalidCoordinates) {
			msg = bannerOutOfRange
		}
		h.renderForm(w, r, data, msg)
		return
	}

	fragment, err := h.renderer.Render(payload, persona)
	if err != nil {
		h.renderForm(w, r, data, bannerServiceFailure)
		return
	}

	data.View = fragment
	page, err := h.renderer.Page(data)
	if err != nil {
		response.InternalError(w, r, "failed to render page")
		return
	}
	response.HTML(w, r, http.StatusOK, page)
}

func (h *PageHandler) renderForm(w http.ResponseWriter, r *http.Request, data view.PageData, banner string) {
	data.Error = banner
	page, err := h.renderer.Page(data)
	if err != nil {
		response.InternalError(w, r, "failed to render page")
		return
	}
	response.HTML(w, r, http.StatusOK, page)
}

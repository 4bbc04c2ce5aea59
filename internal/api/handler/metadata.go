package handler

import (
	"net/http"

	"github.com/aireclaro/aireclaro/internal/api/models"
	"github.com/aireclaro/aireclaro/internal/api/response"
	"github.com/aireclaro/aireclaro/internal/recommend"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// ListPersonas handles GET /api/metadata/personas - the selectable personas.
func (h *MetadataHandler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	personas := recommend.SelectablePersonas()

	items := make([]models.PersonaOption, 0, len(personas))
	for _, p := range personas {
		items = append(items, models.PersonaOption{
			ID:          string(p),
			DisplayName: p.DisplayName(),
		})
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	response.JSON(w, r, http.StatusOK, models.Personas{Items: items})
}

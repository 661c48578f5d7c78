package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

// SettingsService defines the settings operations the API uses
type SettingsService interface {
	Get(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, settings entities.Settings) error
	Reset(ctx context.Context) error
}

// SettingsHandler handles the clinic settings document
type SettingsHandler struct {
	service SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /api/settings. Defaults are returned until settings are saved.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// Replace handles PUT /api/settings with a full settings document
func (h *SettingsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var settings entities.Settings
	if err := decodeJSON(w, r, &settings); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	h.save(w, r, settings)
}

// Update handles PATCH /api/settings. Top-level fields replace the current values.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	patch, err := decodePatch(w, r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	current, err := h.service.Get(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	merged, err := repositories.ApplyPatch(current, patch)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	h.save(w, r, merged)
}

// Reset handles DELETE /api/settings, restoring the defaults
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SettingsHandler) save(w http.ResponseWriter, r *http.Request, settings entities.Settings) {
	if err := settings.Validate(); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := h.service.Save(r.Context(), settings); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

// DashboardService defines the dashboard operations the API uses
type DashboardService interface {
	Summary(ctx context.Context) (entities.DashboardStats, error)
	Upcoming(ctx context.Context, limit int) ([]entities.UpcomingAppointment, error)
}

// DashboardResponse is the landing page payload
type DashboardResponse struct {
	Stats    entities.DashboardStats        `json:"stats"`
	Upcoming []entities.UpcomingAppointment `json:"upcoming"`
}

// DashboardHandler serves the clinic overview
type DashboardHandler struct {
	service DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /api/dashboard?limit=
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	stats, err := h.service.Summary(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	upcoming, err := h.service.Upcoming(r.Context(), limit)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, DashboardResponse{
		Stats:    stats,
		Upcoming: upcoming,
	})
}

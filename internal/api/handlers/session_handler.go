package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

// SessionService defines the session operations the API uses
type SessionService interface {
	RecordService[entities.Session]
	Record(ctx context.Context, session entities.Session) (entities.Session, error)
	ListByPatient(ctx context.Context, patientID string) ([]entities.Session, error)
}

// SessionHandler handles treatment session requests
type SessionHandler struct {
	*CollectionHandler[entities.Session]
	service SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service SessionService) *SessionHandler {
	return &SessionHandler{
		CollectionHandler: NewCollectionHandler[entities.Session]("session", service),
		service:           service,
	}
}

// List handles GET /api/sessions?patientId=
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("patientId")
	if patientID == "" {
		h.CollectionHandler.List(w, r)
		return
	}

	sessions, err := h.service.ListByPatient(r.Context(), patientID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sessions)
}

// Create handles POST /api/sessions. The patient's completed session count is bumped as well.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var session entities.Session
	if err := decodeJSON(w, r, &session); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := session.Validate(); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	created, err := h.service.Record(r.Context(), session)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

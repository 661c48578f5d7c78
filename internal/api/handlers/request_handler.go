package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

// RequestService defines the appointment request operations the API uses
type RequestService interface {
	RecordService[entities.AppointmentRequest]
	Create(ctx context.Context, request entities.AppointmentRequest) (entities.AppointmentRequest, error)
	List(ctx context.Context, status entities.RequestStatus) ([]entities.AppointmentRequest, error)
	Approve(ctx context.Context, id string) (entities.AppointmentRequest, bool, error)
	Reject(ctx context.Context, id string) (entities.AppointmentRequest, bool, error)
	Counts(ctx context.Context) (entities.RequestCounts, error)
}

// RequestHandler handles appointment request endpoints
type RequestHandler struct {
	*CollectionHandler[entities.AppointmentRequest]
	service RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(service RequestService) *RequestHandler {
	return &RequestHandler{
		CollectionHandler: NewCollectionHandler[entities.AppointmentRequest]("request", service),
		service:           service,
	}
}

// List handles GET /api/requests?status=
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	status := entities.RequestStatus(r.URL.Query().Get("status"))
	switch status {
	case "", entities.RequestStatusPending, entities.RequestStatusApproved, entities.RequestStatusRejected:
	default:
		respondWithError(w, http.StatusBadRequest, "unknown request status")
		return
	}

	requests, err := h.service.List(r.Context(), status)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

// Create handles POST /api/requests
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request entities.AppointmentRequest
	if err := decodeJSON(w, r, &request); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), request)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// Approve handles POST /api/requests/{id}/approve
func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.service.Approve)
}

// Reject handles POST /api/requests/{id}/reject
func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.service.Reject)
}

func (h *RequestHandler) review(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id string) (entities.AppointmentRequest, bool, error),
) {
	id := r.PathValue("id")

	request, found, err := apply(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !found {
		respondNotFound(w, "request", id)
		return
	}
	respondWithJSON(w, http.StatusOK, request)
}

// Counts handles GET /api/requests/counts
func (h *RequestHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Counts(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, counts)
}

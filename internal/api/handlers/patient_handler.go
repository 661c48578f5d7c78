package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

// PatientService defines the patient operations the API uses
type PatientService interface {
	RecordService[entities.Patient]
	Create(ctx context.Context, patient entities.Patient) (entities.Patient, error)
	Search(ctx context.Context, term string) ([]entities.Patient, error)
}

// PatientHandler handles patient requests
type PatientHandler struct {
	*CollectionHandler[entities.Patient]
	service PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(service PatientService) *PatientHandler {
	return &PatientHandler{
		CollectionHandler: NewCollectionHandler[entities.Patient]("patient", service),
		service:           service,
	}
}

// List handles GET /api/patients?q=
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patients)
}

// Create handles POST /api/patients
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var patient entities.Patient
	if err := decodeJSON(w, r, &patient); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := patient.Validate(); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), patient)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/pkg/dates"
)

// AppointmentService defines the appointment operations the API uses
type AppointmentService interface {
	RecordService[entities.Appointment]
	Create(ctx context.Context, appointment entities.Appointment) (entities.Appointment, error)
	ForDate(ctx context.Context, date string) ([]entities.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]entities.Appointment, error)
	ForWeek(ctx context.Context, ref time.Time) ([]entities.DaySchedule, error)
}

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	*CollectionHandler[entities.Appointment]
	service AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		CollectionHandler: NewCollectionHandler[entities.Appointment]("appointment", service),
		service:           service,
	}
}

// List handles GET /api/appointments with optional date or patientId filters
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		appointments []entities.Appointment
		err          error
	)
	switch {
	case query.Get("date") != "":
		date := query.Get("date")
		if _, perr := dates.ParseDate(date); perr != nil {
			respondWithError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		appointments, err = h.service.ForDate(r.Context(), date)
	case query.Get("patientId") != "":
		appointments, err = h.service.ListByPatient(r.Context(), query.Get("patientId"))
	default:
		appointments, err = h.service.GetAll(r.Context())
	}
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, appointments)
}

// Create handles POST /api/appointments
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var appointment entities.Appointment
	if err := decodeJSON(w, r, &appointment); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if appointment.Status == "" {
		appointment.Status = entities.AppointmentStatusScheduled
	}
	if err := appointment.Validate(); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), appointment)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// Week handles GET /api/appointments/week?date=, defaulting to the current week
func (h *AppointmentHandler) Week(w http.ResponseWriter, r *http.Request) {
	ref := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := dates.ParseDate(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	week, err := h.service.ForWeek(r.Context(), ref)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, week)
}

package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

// PaymentService defines the payment operations the API uses
type PaymentService interface {
	RecordService[entities.Payment]
	Create(ctx context.Context, payment entities.Payment) (entities.Payment, error)
	MarkPaid(ctx context.Context, id string, method entities.PaymentMethod) (entities.Payment, bool, error)
	ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error)
	ListByPatient(ctx context.Context, patientID string) ([]entities.Payment, error)
	Totals(ctx context.Context) (entities.PaymentTotals, error)
}

// PaymentHandler handles payment requests
type PaymentHandler struct {
	*CollectionHandler[entities.Payment]
	service PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{
		CollectionHandler: NewCollectionHandler[entities.Payment]("payment", service),
		service:           service,
	}
}

// List handles GET /api/payments with optional status or patientId filters
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		payments []entities.Payment
		err      error
	)
	switch {
	case query.Get("status") != "":
		status := entities.PaymentStatus(query.Get("status"))
		if !status.Valid() {
			respondWithError(w, http.StatusBadRequest, "unknown payment status")
			return
		}
		payments, err = h.service.ListByStatus(r.Context(), status)
	case query.Get("patientId") != "":
		payments, err = h.service.ListByPatient(r.Context(), query.Get("patientId"))
	default:
		payments, err = h.service.GetAll(r.Context())
	}
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, payments)
}

// Create handles POST /api/payments. Status and currency may be omitted.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payment entities.Payment
	if err := decodeJSON(w, r, &payment); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := payment.ValidateDraft(); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), payment)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// MarkPaid handles POST /api/payments/{id}/paid with an optional {"paymentMethod": ...} body
func (h *PaymentHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	patch, err := decodePatch(w, r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	method, _ := patch["paymentMethod"].(string)

	payment, found, err := h.service.MarkPaid(r.Context(), id, entities.PaymentMethod(method))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !found {
		respondNotFound(w, "payment", id)
		return
	}
	respondWithJSON(w, http.StatusOK, payment)
}

// Totals handles GET /api/payments/totals
func (h *PaymentHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.Totals(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, totals)
}

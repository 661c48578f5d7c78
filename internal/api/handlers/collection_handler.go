package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

// RecordService is the CRUD surface every collection service exposes
type RecordService[T entities.Record] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, bool, error)
	Update(ctx context.Context, id string, patch repositories.Patch) (T, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ValidatedRecord is a record that can check its own required fields
type ValidatedRecord interface {
	entities.Record
	Validate() error
}

// CollectionHandler serves the id-addressed endpoints shared by all collections
type CollectionHandler[T ValidatedRecord] struct {
	kind    string
	service RecordService[T]
}

// NewCollectionHandler creates a handler for one collection. kind names the record in errors.
func NewCollectionHandler[T ValidatedRecord](kind string, service RecordService[T]) *CollectionHandler[T] {
	return &CollectionHandler[T]{
		kind:    kind,
		service: service,
	}
}

// List handles GET on the collection root
func (h *CollectionHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAll(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

// Get handles GET /{id}
func (h *CollectionHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item, found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !found {
		respondNotFound(w, h.kind, id)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// Update handles PATCH /{id} with a JSON object of fields to merge. The merged record
// must pass Validate before anything is written.
func (h *CollectionHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	patch, err := decodePatch(w, r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	delete(patch, "id")

	current, found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !found {
		respondNotFound(w, h.kind, id)
		return
	}
	merged, err := repositories.ApplyPatch(current, patch)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := merged.Validate(); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	item, found, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !found {
		respondNotFound(w, h.kind, id)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /{id}
func (h *CollectionHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	removed, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !removed {
		respondNotFound(w, h.kind, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

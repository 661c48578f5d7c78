package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// maxBodyBytes caps request bodies; the largest payload is a settings document.
const maxBodyBytes = 1 << 20

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps an application error onto an HTTP status
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		}
	}

	observability.LoggerFromContext(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}

func respondNotFound(w http.ResponseWriter, kind, id string) {
	respondWithError(w, http.StatusNotFound, fmt.Sprintf("%s %s not found", kind, id))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}
	return nil
}

// decodePatch reads a JSON object of fields to merge. An empty body is an empty patch.
func decodePatch(w http.ResponseWriter, r *http.Request) (repositories.Patch, error) {
	patch := repositories.Patch{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&patch); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewValidationError("request body must be a JSON object")
	}
	return patch, nil
}

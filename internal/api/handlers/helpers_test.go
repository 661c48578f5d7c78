package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/records"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/storage"
	"github.com/zatekoja/physiodesk/backend/internal/application/services"
)

func newClinic(t *testing.T) *services.Clinic {
	t.Helper()
	return services.NewClinic(records.NewCollections(storage.NewMemoryAdapter(), "physio_"))
}

// serve calls h with a request whose {id} path value is set when id is not empty.
func serve(h http.HandlerFunc, method, target, body, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if id != "" {
		req.SetPathValue("id", id)
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

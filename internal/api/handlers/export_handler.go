package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/zatekoja/physiodesk/backend/pkg/dates"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorkbookWriter renders the clinic export
type WorkbookWriter interface {
	WriteWorkbook(ctx context.Context, w io.Writer) error
}

// ExportHandler serves the spreadsheet export
type ExportHandler struct {
	exporter WorkbookWriter
}

// NewExportHandler creates a new export handler
func NewExportHandler(exporter WorkbookWriter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// Workbook handles GET /api/export.xlsx
func (h *ExportHandler) Workbook(w http.ResponseWriter, r *http.Request) {
	// Buffer so a failed export can still answer with a JSON error.
	var buf bytes.Buffer
	if err := h.exporter.WriteWorkbook(r.Context(), &buf); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	filename := fmt.Sprintf("physio-export-%s.xlsx", dates.FormatISODate(time.Now()))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

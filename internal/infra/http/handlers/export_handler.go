package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/radomlabs/radom-crm/internal/infra/http/middleware"
	"github.com/radomlabs/radom-crm/internal/infra/spreadsheet"
	"github.com/radomlabs/radom-crm/internal/usecase"
)

type ExportHandler struct {
	ExportUC *usecase.ExportContactsUseCase
}

func NewExportHandler(exportUC *usecase.ExportContactsUseCase) *ExportHandler {
	return &ExportHandler{ExportUC: exportUC}
}

// Handle (GET /export?format=csv|xlsx&status=&category=&q=) streams the
// filtered contact list as a download. Same filters as the listing.
func (h *ExportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	format, err := spreadsheet.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	filter := usecase.ContactFilter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}

	// Buffered so a storage failure can still become a clean JSON error.
	var buf bytes.Buffer
	if err := h.ExportUC.Execute(r.Context(), filter, format, &buf); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordExport(string(format))

	filename := fmt.Sprintf("contacts_%s.%s", time.Now().UTC().Format("20060102"), format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

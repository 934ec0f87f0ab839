package handlers

import (
	"net/http"

	"github.com/radomlabs/radom-crm/internal/infra/http/middleware"
	"github.com/radomlabs/radom-crm/internal/infra/spreadsheet"
	"github.com/radomlabs/radom-crm/internal/usecase"
)

// Uploads beyond this are almost certainly not contact lists.
const maxImportSize = 32 << 20 // 32 MiB

type ImportHandler struct {
	ImportUC *usecase.ImportContactsUseCase
}

func NewImportHandler(importUC *usecase.ImportContactsUseCase) *ImportHandler {
	return &ImportHandler{ImportUC: importUC}
}

// Handle (POST /import) accepts a multipart upload under the "file" key
// and answers with the per-row import summary.
func (h *ImportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid upload: " + err.Error()})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing \"file\" field"})
		return
	}
	defer file.Close()

	format, err := spreadsheet.FormatFromFilename(header.Filename)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	table, err := spreadsheet.Read(format, file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	summary, err := h.ImportUC.Execute(r.Context(), table)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordImport("imported", summary.Imported)
	middleware.RecordImport("merged", summary.Merged)
	middleware.RecordImport("skipped", summary.Skipped)

	writeJSON(w, http.StatusOK, summary)
}

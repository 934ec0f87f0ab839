package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/radomlabs/radom-crm/internal/entity"
	"github.com/radomlabs/radom-crm/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses: validation
// problems are the caller's, storage problems are ours.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrContactNotFound), errors.Is(err, entity.ErrNoteNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case usecase.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

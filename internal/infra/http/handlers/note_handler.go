package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radomlabs/radom-crm/internal/entity"
	"github.com/radomlabs/radom-crm/internal/infra/http/middleware"
	"github.com/radomlabs/radom-crm/internal/usecase"
)

type NoteHandler struct {
	AddUC *usecase.AddNoteUseCase
	Repo  entity.NoteRepositoryInterface
}

func NewNoteHandler(addUC *usecase.AddNoteUseCase, repo entity.NoteRepositoryInterface) *NoteHandler {
	return &NoteHandler{AddUC: addUC, Repo: repo}
}

type addNoteRequest struct {
	Body string `json:"body"`
}

func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	note, err := h.AddUC.Execute(r.Context(), chi.URLParam(r, "id"), req.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordNoteCreated()
	writeJSON(w, http.StatusCreated, note)
}

// List (GET /contacts/{id}/notes), oldest first.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Repo.ListByContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, &usecase.StorageError{Op: "list notes", Err: err})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notes": notes,
		"count": len(notes),
	})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

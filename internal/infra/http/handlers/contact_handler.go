package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/radomlabs/radom-crm/internal/usecase"
)

type ContactHandler struct {
	CreateUC *usecase.CreateContactUseCase
	UpdateUC *usecase.UpdateContactUseCase
	StatusUC *usecase.SetStatusUseCase
	Repo     usecase.ContactRepositoryInterface
}

func NewContactHandler(
	createUC *usecase.CreateContactUseCase,
	updateUC *usecase.UpdateContactUseCase,
	statusUC *usecase.SetStatusUseCase,
	repo usecase.ContactRepositoryInterface,
) *ContactHandler {
	return &ContactHandler{
		CreateUC: createUC,
		UpdateUC: updateUC,
		StatusUC: statusUC,
		Repo:     repo,
	}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	contact, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

// List (GET /contacts?status=&category=&q=&archived=)
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.ContactFilter{
		Status:          r.URL.Query().Get("status"),
		Category:        r.URL.Query().Get("category"),
		Search:          r.URL.Query().Get("q"),
		IncludeArchived: r.URL.Query().Get("archived") == "true",
	}

	contacts, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		writeError(w, &usecase.StorageError{Op: "list contacts", Err: err})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"contacts": contacts,
		"count":    len(contacts),
	})
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	contact, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus (PUT /contacts/{id}/status)
func (h *ContactHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	contact, err := h.StatusUC.Execute(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

// Archive (DELETE /contacts/{id}) is a soft delete: the contact drops out
// of default listings but stays in the store.
func (h *ContactHandler) Archive(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Archive(r.Context(), chi.URLParam(r, "id"), time.Now().UTC()); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

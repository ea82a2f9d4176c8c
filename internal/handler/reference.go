package handler

import (
	"net/http"

	"github.com/laplogger/internal/repository"
)

type ReferenceHandler struct {
	repo *repository.Store
}

func NewReferenceHandler(repo *repository.Store) *ReferenceHandler {
	return &ReferenceHandler{repo: repo}
}

func (h *ReferenceHandler) GetStrokes(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListStrokes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReferenceHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/laplogger/internal/model"
	"github.com/laplogger/internal/repository"
)

type SwimmerHandler struct {
	repo *repository.Store
}

func NewSwimmerHandler(repo *repository.Store) *SwimmerHandler {
	return &SwimmerHandler{repo: repo}
}

func (h *SwimmerHandler) GetSwimmers(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListSwimmers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *SwimmerHandler) GetSwimmer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid swimmer ID")
		return
	}
	sw, err := h.repo.GetSwimmer(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Swimmer not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sw)
}

func (h *SwimmerHandler) CreateSwimmer(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSwimmerInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	sw, err := h.repo.CreateSwimmer(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, sw)
}

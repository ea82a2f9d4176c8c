package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/laplogger/internal/model"
	"github.com/laplogger/internal/repository"
)

type TimeHandler struct {
	repo *repository.Store
}

func NewTimeHandler(repo *repository.Store) *TimeHandler {
	return &TimeHandler{repo: repo}
}

func (h *TimeHandler) CreateTime(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTimeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SwimmerID <= 0 || req.EventID <= 0 || req.TimeMs <= 0 {
		writeError(w, http.StatusBadRequest, "Swimmer ID, Event ID, and Time are required")
		return
	}
	rec, err := h.repo.CreateTime(r.Context(), req)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *TimeHandler) GetTimesBySwimmer(w http.ResponseWriter, r *http.Request) {
	swimmerID, err := strconv.ParseInt(chi.URLParam(r, "swimmerID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid swimmer ID")
		return
	}
	list, err := h.repo.ListTimesBySwimmer(r.Context(), swimmerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *TimeHandler) GetAllTimes(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListTimes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

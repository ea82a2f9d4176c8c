package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/laplogger/internal/logger"
	"github.com/laplogger/internal/model"
	"github.com/laplogger/internal/service"
)

type AuthHandler struct {
	authSvc *service.AuthService
}

func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.NewUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := h.authSvc.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Username, email, and password are required")
		case errors.Is(err, service.ErrUserExists):
			writeError(w, http.StatusConflict, "Username or email already exists")
		default:
			logger.Errorf("register %q: %v", req.Username, err)
			writeError(w, http.StatusInternalServerError, "Error creating user")
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := h.authSvc.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			logger.Errorf("login %q: %v", req.Username, err)
			writeError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vrentals-api/internal/application/session"
	"github.com/vrentals-api/internal/domain"
)

var loginErrors = errorMessages{
	domain.ErrValidation:         "Please fill in all fields",
	domain.ErrInvalidCredentials: "Invalid email or password",
}

// SessionHandler handles login.
type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, loginErrors[domain.ErrValidation])
		return
	}
	result, err := h.svc.Login(r.Context(), req)
	if err != nil {
		httpError(w, r, err, loginErrors)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

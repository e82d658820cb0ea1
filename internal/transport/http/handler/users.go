package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vrentals-api/internal/application/user"
	"github.com/vrentals-api/internal/domain"
)

var registerErrors = errorMessages{
	domain.ErrValidation: "Please fill in all fields",
	domain.ErrConflict:   "Email already registered",
}

// UserHandler handles account registration.
type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, registerErrors[domain.ErrValidation])
		return
	}
	if _, err := h.svc.Register(r.Context(), req); err != nil {
		httpError(w, r, err, registerErrors)
		return
	}
	writeMessage(w, http.StatusCreated, "Registration successful")
}

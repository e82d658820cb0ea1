package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vrentals-api/internal/application/auth"
	"github.com/vrentals-api/internal/domain"
)

const (
	invalidCodeMessage  = "Invalid or expired OTP"
	userNotFoundMessage = "User not found"
)

var (
	forgotErrors = errorMessages{
		domain.ErrValidation: "Please provide an email",
		domain.ErrNotFound:   userNotFoundMessage,
	}
	verifyErrors = errorMessages{
		domain.ErrValidation:  "Please provide email and OTP",
		domain.ErrInvalidCode: invalidCodeMessage,
	}
	resetErrors = errorMessages{
		domain.ErrValidation:  "Please provide email, OTP, and new password",
		domain.ErrInvalidCode: invalidCodeMessage,
		domain.ErrNotFound:    userNotFoundMessage,
	}
)

// PasswordResetHandler exposes the three steps of the OTP password reset.
type PasswordResetHandler struct {
	svc auth.Service
}

func NewPasswordResetHandler(svc auth.Service) *PasswordResetHandler {
	return &PasswordResetHandler{svc: svc}
}

func (h *PasswordResetHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, forgotErrors[domain.ErrValidation])
		return
	}
	if err := h.svc.RequestReset(r.Context(), req); err != nil {
		httpError(w, r, err, forgotErrors)
		return
	}
	writeMessage(w, http.StatusOK, "OTP sent to your email")
}

func (h *PasswordResetHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req auth.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, verifyErrors[domain.ErrValidation])
		return
	}
	if err := h.svc.VerifyCode(r.Context(), req); err != nil {
		httpError(w, r, err, verifyErrors)
		return
	}
	writeMessage(w, http.StatusOK, "OTP verified successfully")
}

func (h *PasswordResetHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, resetErrors[domain.ErrValidation])
		return
	}
	if err := h.svc.ResetPassword(r.Context(), req); err != nil {
		httpError(w, r, err, resetErrors)
		return
	}
	writeMessage(w, http.StatusOK, "Password reset successfully")
}

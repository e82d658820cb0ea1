package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/vrentals-api/internal/domain"
)

const serverErrorMessage = "Server error"

// errorMessages gives the client-facing message per domain sentinel for one
// endpoint. Sentinels without an entry fall back to the error text.
type errorMessages map[error]string

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidCode):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// httpError maps err to a status code and writes the JSON error body.
// Server errors are logged at error level and expose the cause in "error".
func httpError(w http.ResponseWriter, r *http.Request, err error, msgs errorMessages) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeJSON(w, status, MessageEnvelope{Message: serverErrorMessage, Error: err.Error()})
		return
	}
	hlog.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	msg := err.Error()
	for sentinel, m := range msgs {
		if errors.Is(err, sentinel) {
			msg = m
			break
		}
	}
	writeMessage(w, status, msg)
}

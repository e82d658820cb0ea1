package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vrentals-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper. Error carries the
// underlying cause of a server error and is empty otherwise.
type MessageEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ListingEnvelope wraps a newly created listing.
type ListingEnvelope struct {
	Message  string          `json:"message"`
	Property *domain.Listing `json:"property"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Message: msg})
}

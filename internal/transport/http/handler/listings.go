package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vrentals-api/internal/application/listing"
	"github.com/vrentals-api/internal/domain"
	"github.com/vrentals-api/internal/transport/http/middleware"
)

const (
	createListingInvalid = "Please fill in all fields and upload an image"
	listingNotFound      = "Property not found"
	// formOverhead leaves room for the text fields and multipart framing.
	formOverhead = 1 << 20
)

var (
	createListingErrors = errorMessages{domain.ErrValidation: createListingInvalid}
	toggleErrors        = errorMessages{domain.ErrNotFound: listingNotFound}
)

// ListingHandler handles property listing endpoints.
type ListingHandler struct {
	svc            listing.Service
	maxUploadBytes int64
}

func NewListingHandler(svc listing.Service, maxUploadBytes int64) *ListingHandler {
	return &ListingHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// Create accepts multipart/form-data. The body is capped so the whole form
// fits in memory and nothing spills to temporary files.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Please login to add a property")
		return
	}

	limit := h.maxUploadBytes + formOverhead
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusBadRequest, "Image is too large")
			return
		}
		writeMessage(w, http.StatusBadRequest, createListingInvalid)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	req := domain.CreateListingRequest{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		Price:         r.FormValue("price"),
		ContactNumber: r.FormValue("contactNumber"),
	}

	var img *listing.ImageInput
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		img = &listing.ImageInput{Filename: header.Filename, Reader: file}
	}

	l, err := h.svc.Create(r.Context(), ownerID, req, img)
	if err != nil {
		httpError(w, r, err, createListingErrors)
		return
	}
	writeJSON(w, http.StatusCreated, ListingEnvelope{Message: "Property added successfully", Property: l})
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	_, authenticated := middleware.UserIDFromContext(r.Context())
	items, err := h.svc.List(r.Context(), authenticated)
	if err != nil {
		httpError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ListingHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkSold(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, r, err, toggleErrors)
		return
	}
	writeMessage(w, http.StatusOK, "Property marked as sold")
}

func (h *ListingHandler) MarkAvailable(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkAvailable(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, r, err, toggleErrors)
		return
	}
	writeMessage(w, http.StatusOK, "Property marked as available")
}

package listing

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vrentals-api/internal/domain"
	"github.com/vrentals-api/internal/pkg/id"
	"github.com/vrentals-api/internal/pkg/validate"
)

// ImageInput is the uploaded image accompanying a new listing.
type ImageInput struct {
	Filename string
	Reader   io.ReadSeeker
}

type Service interface {
	Create(ctx context.Context, ownerID string, req domain.CreateListingRequest, img *ImageInput) (*domain.Listing, error)
	List(ctx context.Context, viewerAuthenticated bool) ([]domain.Listing, error)
	MarkSold(ctx context.Context, listingID string) error
	MarkAvailable(ctx context.Context, listingID string) error
	SeedIfEmpty(ctx context.Context) (int, error)
}

type listingStore interface {
	Put(ctx context.Context, l *domain.Listing) error
	ListNewestFirst(ctx context.Context) ([]domain.Listing, error)
	IsEmpty(ctx context.Context) (bool, error)
	SetSold(ctx context.Context, listingID string, sold bool) error
}

type imageUploader interface {
	Upload(ctx context.Context, ownerID, filename string, r io.ReadSeeker) (string, error)
}

type service struct {
	repo   listingStore
	images imageUploader
}

type ServiceDeps struct {
	ListingRepo listingStore
	Images      imageUploader
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.ListingRepo, images: deps.Images}
}

// Create uploads the image first and writes the listing only once the
// upload succeeded.
func (s *service) Create(ctx context.Context, ownerID string, req domain.CreateListingRequest, img *ImageInput) (*domain.Listing, error) {
	if err := validate.Struct(req); err != nil || img == nil || img.Reader == nil {
		return nil, fmt.Errorf("all fields and an image are required: %w", domain.ErrValidation)
	}
	url, err := s.images.Upload(ctx, ownerID, img.Filename, img.Reader)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	owner := ownerID
	l := &domain.Listing{
		ListingID:     id.NewAt(now),
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      url,
		ContactNumber: req.ContactNumber,
		OwnerID:       &owner,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Put(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns every listing newest first. Anonymous viewers see the
// placeholder instead of contact numbers.
func (s *service) List(ctx context.Context, viewerAuthenticated bool) ([]domain.Listing, error) {
	items, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Listing{}
	}
	if !viewerAuthenticated {
		for i := range items {
			items[i].ContactNumber = domain.ContactPlaceholder
		}
	}
	return items, nil
}

func (s *service) MarkSold(ctx context.Context, listingID string) error {
	return s.setSold(ctx, listingID, true)
}

func (s *service) MarkAvailable(ctx context.Context, listingID string) error {
	return s.setSold(ctx, listingID, false)
}

func (s *service) setSold(ctx context.Context, listingID string, sold bool) error {
	if !id.Valid(listingID) {
		return fmt.Errorf("listing not found: %w", domain.ErrNotFound)
	}
	return s.repo.SetSold(ctx, listingID, sold)
}

// SeedIfEmpty inserts the demo listings when the store has none and
// returns how many were written.
func (s *service) SeedIfEmpty(ctx context.Context) (int, error) {
	empty, err := s.repo.IsEmpty(ctx)
	if err != nil {
		return 0, err
	}
	if !empty {
		return 0, nil
	}
	base := time.Now().UTC()
	for i, seed := range seedListings {
		// Later seeds get later ids so the feed shows the last one first.
		at := base.Add(time.Duration(i) * time.Millisecond)
		l := seed
		l.ListingID = id.NewAt(at)
		l.CreatedAt = at
		l.UpdatedAt = at
		if err := s.repo.Put(ctx, &l); err != nil {
			return i, fmt.Errorf("seed listing %q: %w", l.Title, err)
		}
	}
	log.Info().Int("count", len(seedListings)).Msg("seeded demo listings")
	return len(seedListings), nil
}

package http

import (
	"context"
	"io"

	"github.com/vrentals-api/internal/domain"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	UpdatePasswordHash(ctx context.Context, userID, hash string) error
}

// ListingRepository is the minimal interface the router requires from a listing store.
// ListNewestFirst returns the whole feed ordered by descending listing id.
type ListingRepository interface {
	Put(ctx context.Context, l *domain.Listing) error
	ListNewestFirst(ctx context.Context) ([]domain.Listing, error)
	IsEmpty(ctx context.Context) (bool, error)
	SetSold(ctx context.Context, listingID string, sold bool) error
}

// ResetCodeRepository is the minimal interface the router requires from a one-time-code store.
// Get returns expired records that the store has not swept yet.
type ResetCodeRepository interface {
	Put(ctx context.Context, c *domain.ResetCode) error
	Get(ctx context.Context, email, code string) (*domain.ResetCode, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// ObjectStore is the minimal interface the router requires from an object storage backend.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.ReadSeeker, size int64, contentType string) (string, error)
}

// Mailer delivers plain-text email. SMTP and SNS senders both satisfy it.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

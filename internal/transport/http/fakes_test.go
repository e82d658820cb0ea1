package http

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"sync"

	"github.com/vrentals-api/internal/domain"
)

// In-memory stores with the same error contract as the DynamoDB and
// MongoDB repositories.

type memUsers struct {
	mu    sync.Mutex
	byID  map[string]*domain.User
	email map[string]string
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]*domain.User{}, email: map[string]string{}}
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.email[email]
	if !ok {
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	u := *m.byID[id]
	return &u, nil
}

func (m *memUsers) Put(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.email[u.Email]; taken {
		return fmt.Errorf("email: %w", domain.ErrConflict)
	}
	cp := *u
	m.byID[u.UserID] = &cp
	m.email[u.Email] = u.UserID
	return nil
}

func (m *memUsers) UpdatePasswordHash(_ context.Context, userID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[userID]
	if !ok {
		return fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	u.PasswordHash = hash
	return nil
}

type memListings struct {
	mu    sync.Mutex
	items map[string]domain.Listing
}

func newMemListings() *memListings { return &memListings{items: map[string]domain.Listing{}} }

func (m *memListings) Put(_ context.Context, l *domain.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[l.ListingID] = *l
	return nil
}

func (m *memListings) ListNewestFirst(_ context.Context) ([]domain.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Listing, 0, len(m.items))
	for _, l := range m.items {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ListingID > out[j].ListingID })
	return out, nil
}

func (m *memListings) IsEmpty(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items) == 0, nil
}

func (m *memListings) SetSold(_ context.Context, listingID string, sold bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.items[listingID]
	if !ok {
		return fmt.Errorf("listing: %w", domain.ErrNotFound)
	}
	l.Sold = sold
	m.items[listingID] = l
	return nil
}

func (m *memListings) get(listingID string) domain.Listing {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[listingID]
}

type memCodes struct {
	mu    sync.Mutex
	codes map[string]domain.ResetCode
}

func newMemCodes() *memCodes { return &memCodes{codes: map[string]domain.ResetCode{}} }

func (m *memCodes) Put(_ context.Context, c *domain.ResetCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[c.Email+"|"+c.Code] = *c
	return nil
}

func (m *memCodes) Get(_ context.Context, email, code string) (*domain.ResetCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.codes[email+"|"+code]
	if !ok {
		return nil, fmt.Errorf("reset code: %w", domain.ErrNotFound)
	}
	return &c, nil
}

func (m *memCodes) DeleteByEmail(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, c := range m.codes {
		if c.Email == email {
			delete(m.codes, k)
		}
	}
	return nil
}

func (m *memCodes) count(email string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.codes {
		if c.Email == email {
			n++
		}
	}
	return n
}

type memObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemObjects() *memObjects { return &memObjects{objects: map[string][]byte{}} }

func (m *memObjects) Upload(_ context.Context, key string, r io.ReadSeeker, size int64, _ string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if int64(len(data)) != size {
		return "", fmt.Errorf("object %s: declared %d bytes, read %d", key, size, len(data))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return "https://cdn.test/" + key, nil
}

// captureMailer records sent mail and extracts the last one-time code.
type captureMailer struct {
	mu       sync.Mutex
	lastTo   string
	lastCode string
}

var codePattern = regexp.MustCompile(`\b(\d{6})\b`)

func (m *captureMailer) SendEmail(_ context.Context, to, _, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastTo = to
	if match := codePattern.FindStringSubmatch(body); match != nil {
		m.lastCode = match[1]
	}
	return nil
}

func (m *captureMailer) code() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCode
}

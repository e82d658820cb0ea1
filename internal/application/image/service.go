package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vrentals-api/internal/domain"
	"github.com/vrentals-api/internal/pkg/id"
)

// sniffLen matches mimetype's default read limit.
const sniffLen = 3072

type Service interface {
	// Upload stores an image and returns its public URL. r is rewound
	// after sniffing so the store receives the whole object.
	Upload(ctx context.Context, ownerID, filename string, r io.ReadSeeker) (string, error)
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.ReadSeeker, size int64, contentType string) (string, error)
}

type service struct {
	store objectStore
}

func NewService(store objectStore) Service {
	return &service{store: store}
}

func (s *service) Upload(ctx context.Context, ownerID, filename string, r io.ReadSeeker) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read image: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", fmt.Errorf("image is empty: %w", domain.ErrValidation)
	}

	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("unsupported image type %s: %w", mt.String(), domain.ErrValidation)
	}

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return "", fmt.Errorf("measure image: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind image: %w", err)
	}

	key := fmt.Sprintf("listings/%s/%s-%s", ownerID, id.New(), sanitizeFilename(filename))
	return s.store.Upload(ctx, key, r, size, mt.String())
}

// sanitizeFilename strips directory components and keeps only safe characters
// (alphanumeric, dot, dash, underscore) so the object key cannot escape its prefix.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if result := b.String(); result != "" && result != "." && result != ".." {
		return result
	}
	return "_"
}

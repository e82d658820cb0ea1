package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/vrentals-api/internal/domain"
	"github.com/vrentals-api/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type Service interface {
	Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenSigner interface {
	Sign(userID string) (string, error)
}

type service struct {
	userRepo    userStore
	jwtProvider tokenSigner
}

type ServiceDeps struct {
	UserRepo    userStore
	JWTProvider tokenSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{userRepo: deps.UserRepo, jwtProvider: deps.JWTProvider}
}

// Login exchanges credentials for a bearer token. Unknown email and wrong
// password fail identically.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error) {
	req.Email = domain.NormalizeEmail(req.Email)
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrValidation)
	}
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := s.jwtProvider.Sign(u.UserID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Username: u.Username}, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vrentals-api/internal/domain"
	"github.com/vrentals-api/internal/pkg/otp"
	"github.com/vrentals-api/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

const (
	resetSubject = "Password Reset OTP - V.Rentals"
	resetBody    = "Your OTP for password reset is: %s. It is valid for %s."
)

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,max=72"`
}

// Service drives the three-step password reset. It holds no per-user state;
// every step reads the code store.
type Service interface {
	RequestReset(ctx context.Context, req ForgotPasswordRequest) error
	VerifyCode(ctx context.Context, req VerifyOTPRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type resetCodeStore interface {
	Put(ctx context.Context, c *domain.ResetCode) error
	Get(ctx context.Context, email, code string) (*domain.ResetCode, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, userID, hash string) error
}

type mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type service struct {
	codeRepo resetCodeStore
	userRepo userStore
	mailer   mailer
	codeTTL  time.Duration
	newCode  func() (string, error)
	now      func() time.Time
}

type ServiceDeps struct {
	ResetCodeRepo resetCodeStore
	UserRepo      userStore
	Mailer        mailer
	CodeTTL       time.Duration
}

func NewService(deps ServiceDeps) Service {
	ttl := deps.CodeTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &service{
		codeRepo: deps.ResetCodeRepo,
		userRepo: deps.UserRepo,
		mailer:   deps.Mailer,
		codeTTL:  ttl,
		newCode:  otp.New,
		now:      time.Now,
	}
}

func (s *service) RequestReset(ctx context.Context, req ForgotPasswordRequest) error {
	req.Email = domain.NormalizeEmail(req.Email)
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("email is required: %w", domain.ErrValidation)
	}
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return err
	}
	code, err := s.newCode()
	if err != nil {
		return err
	}
	now := s.now().UTC()
	rc := &domain.ResetCode{
		Email:     u.Email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.codeTTL),
	}
	if err := s.codeRepo.Put(ctx, rc); err != nil {
		return err
	}
	body := fmt.Sprintf(resetBody, code, validityText(s.codeTTL))
	if err := s.mailer.SendEmail(ctx, u.Email, resetSubject, body); err != nil {
		return fmt.Errorf("send reset code: %w", err)
	}
	return nil
}

func (s *service) VerifyCode(ctx context.Context, req VerifyOTPRequest) error {
	req.Email = domain.NormalizeEmail(req.Email)
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("email and OTP are required: %w", domain.ErrValidation)
	}
	return s.checkCode(ctx, req.Email, req.OTP)
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	req.Email = domain.NormalizeEmail(req.Email)
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("email, OTP and new password are required: %w", domain.ErrValidation)
	}
	if err := s.checkCode(ctx, req.Email, req.OTP); err != nil {
		return err
	}
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, u.UserID, string(hash)); err != nil {
		return err
	}
	if err := s.codeRepo.DeleteByEmail(ctx, req.Email); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("email", req.Email).Msg("failed to delete reset codes")
	}
	return nil
}

// checkCode accepts only an exact (email, code) match that has not expired.
// It does not consume the code.
func (s *service) checkCode(ctx context.Context, email, code string) error {
	rc, err := s.codeRepo.Get(ctx, email, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidCode
		}
		return err
	}
	if rc.ExpiredAt(s.now()) {
		return domain.ErrInvalidCode
	}
	return nil
}

// validityText renders ttl for the reset mail: whole minutes as "10 minutes",
// anything else in seconds.
func validityText(ttl time.Duration) string {
	switch {
	case ttl == time.Minute:
		return "1 minute"
	case ttl%time.Minute == 0:
		return fmt.Sprintf("%d minutes", int(ttl/time.Minute))
	case ttl < 2*time.Second:
		return "1 second"
	default:
		return fmt.Sprintf("%d seconds", int(ttl/time.Second))
	}
}

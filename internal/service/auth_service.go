package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"portfolio/internal/auth"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/metrics"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// dummyHash is compared against when the email is unknown so that both
// login failure paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	h, err := auth.HashPassword("portfolio-dummy-password")
	if err != nil {
		return ""
	}
	return h
})

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	SeedAdmin(ctx context.Context, email, password string) (admin *model.Admin, created bool, err error)
	SeedEnabled() bool
}

type authService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
	allowSeed  bool
	metrics    metrics.Recorder
}

// NewAuthService creates a new authentication service.
// allowSeed is the operator switch for SeedAdmin.
func NewAuthService(adminRepo repository.AdminRepository, jwtService *auth.JWTService, allowSeed bool, recorder metrics.Recorder) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		allowSeed:  allowSeed,
		metrics:    metrics.OrNop(recorder),
	}
}

func (s *authService) SeedEnabled() bool {
	return s.allowSeed
}

// Login authenticates an admin and returns a signed token.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if !s.jwtService.Configured() {
		s.metrics.RecordLogin(metrics.LoginError)
		return "", apperrors.ErrSecretMisconfigured
	}

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.metrics.RecordLogin(metrics.LoginError)
			return "", fmt.Errorf("find admin: %w", err)
		}
		auth.CheckPassword(password, dummyHash())
		s.metrics.RecordLogin(metrics.LoginInvalidCredentials)
		return "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, admin.PasswordHash) {
		s.metrics.RecordLogin(metrics.LoginInvalidCredentials)
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		s.metrics.RecordLogin(metrics.LoginError)
		return "", fmt.Errorf("generate token: %w", err)
	}

	s.metrics.RecordLogin(metrics.LoginSuccess)
	return token, nil
}

// SeedAdmin creates the admin if no record with that email exists.
// An existing record is returned unchanged with created=false.
func (s *authService) SeedAdmin(ctx context.Context, email, password string) (*model.Admin, bool, error) {
	if !s.allowSeed {
		return nil, false, apperrors.ErrSeedDisabled
	}

	existing, err := s.adminRepo.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("check admin existence: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	admin := &model.Admin{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost a race with a concurrent seed for the same email
			existing, findErr := s.adminRepo.FindByEmail(ctx, email)
			if findErr != nil {
				return nil, false, fmt.Errorf("reload admin: %w", findErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create admin: %w", err)
	}

	slog.InfoContext(ctx, "admin seeded", slog.String("admin_id", admin.ID))
	return admin, true, nil
}

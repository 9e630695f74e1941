package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/app/repositories"
	"github.com/lucianaf/vspotlight/internal/pkg/apperrors"
	pkgauth "github.com/lucianaf/vspotlight/internal/pkg/auth"
	"github.com/lucianaf/vspotlight/internal/pkg/logger"
	"github.com/lucianaf/vspotlight/internal/pkg/validation"
)

// AuthService defines the interface for account and session operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error)
	GetProfile(ctx context.Context, email string) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo    *repositories.UserRepository
	jwtService  *pkgauth.JWTService
	emailDomain string
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *pkgauth.JWTService, emailDomain string) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		jwtService:  jwtService,
		emailDomain: emailDomain,
	}
}

// validateRegistration validates registration data in a fixed order so the
// user always sees the most fundamental problem first
func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.StudentID) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Major) == "" ||
		req.Password == "" {
		return apperrors.NewValidationError("all fields are required")
	}

	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	if !validation.IsInstitutionalEmail(req.Email, s.emailDomain) {
		return fmt.Errorf("%w: email must end with @%s", apperrors.ErrInvalidEmail, s.emailDomain)
	}

	return nil
}

// Register creates a new student account
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password during registration")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		StudentID: strings.TrimSpace(req.StudentID),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Major:     strings.TrimSpace(req.Major),
		Password:  hashed,
		Role:      models.RoleStudent,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().Str("email", user.Email).Msg("New account registered")
	return user, nil
}

// Login verifies credentials and issues a token pair. Unknown email and wrong
// password produce the same error so accounts cannot be enumerated.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !pkgauth.CheckPassword(user.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		logger.Error().Err(err).Str("email", user.Email).Msg("Failed to generate token pair")
		return nil, nil, fmt.Errorf("error generating tokens: %w", err)
	}

	token := &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             int64(expiresIn),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: int64(refreshExpiresIn),
	}

	return user, token, nil
}

// GetProfile retrieves the account behind a verified token
func (s *authServiceImpl) GetProfile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return user, nil
}

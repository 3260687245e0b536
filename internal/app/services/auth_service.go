package services

import (
	"context"
	"errors"
	"time"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/academyadmin/academy-api/internal/pkg/metrics"
	"github.com/rs/zerolog"
)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike.
var ErrInvalidCredentials = apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")

// LoginResult is the outcome of a successful login
type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresIn time.Duration
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo   UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks an administrator's credentials and issues a token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.logger.Info().Str("email", email).Msg("Login attempt for unknown email")
			metrics.RecordLogin(false)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.Info().Str("userID", user.ID).Msg("Login attempt with password mismatch")
		metrics.RecordLogin(false)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Info().Str("userID", user.ID).Msg("Login attempt for inactive account")
		metrics.RecordLogin(false)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	metrics.RecordLogin(true)
	s.logger.Info().Str("userID", user.ID).Msg("Administrator logged in")
	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresIn: s.jwtService.Expiration(),
	}, nil
}

// Me resolves the administrator behind an authenticated request
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	if !validID(userID) {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, active bool) (*AuthService, *auth.JWTService) {
	t.Helper()
	digest, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	admin := &models.User{ID: userID, Email: "a@x.com", Password: digest, Name: "Ada", Role: models.RoleAdmin, IsActive: active}
	store := &fakeUserStore{
		getByEmail: func(ctx context.Context, email string) (*models.User, error) {
			if email != admin.Email {
				return nil, repositories.ErrNotFound
			}
			return admin, nil
		},
		getByID: func(ctx context.Context, id string) (*models.User, error) {
			if id != admin.ID {
				return nil, repositories.ErrNotFound
			}
			return admin, nil
		},
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", Expiration: time.Hour})
	return NewAuthService(store, jwtService, zerolog.Nop()), jwtService
}

func TestLogin_IssuesValidToken(t *testing.T) {
	svc, jwtService := newAuthService(t, true)

	result, err := svc.Login(context.Background(), "a@x.com", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, result.ExpiresIn)

	claims, err := jwtService.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t, true)

	_, unknown := svc.Login(context.Background(), "ghost@x.com", "correct-password")
	_, wrong := svc.Login(context.Background(), "a@x.com", "wrong")

	require.Error(t, unknown)
	require.Error(t, wrong)
	assert.Equal(t, unknown, wrong)
	assert.Equal(t, "Invalid credentials", wrong.Error())
	assert.ErrorIs(t, wrong, apperrors.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, _ := newAuthService(t, false)

	_, err := svc.Login(context.Background(), "a@x.com", "correct-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc, _ := newAuthService(t, true)

	user, err := svc.Me(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = svc.Me(context.Background(), otherID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

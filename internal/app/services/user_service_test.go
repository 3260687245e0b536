package services

import (
	"context"
	"testing"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "0b1c2d3e-4f50-4617-8283-9a0b1c2d3e4f"

func TestCreateUser_HashesPasswordAndSetsRole(t *testing.T) {
	var stored *models.User
	store := &fakeUserStore{
		emailExists: func(ctx context.Context, email, excludeID string) (bool, error) { return false, nil },
		create: func(ctx context.Context, user *models.User) error {
			stored = user
			return nil
		},
	}

	user := &models.User{Email: "a@x.com", Name: "Ada"}
	require.NoError(t, NewUserService(store).CreateUser(context.Background(), user, "longpassword"))

	require.NotNil(t, stored)
	assert.Equal(t, models.RoleAdmin, stored.Role)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, "longpassword", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "longpassword"))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	store := &fakeUserStore{
		emailExists: func(ctx context.Context, email, excludeID string) (bool, error) { return true, nil },
	}

	err := NewUserService(store).CreateUser(context.Background(), &models.User{Email: "a@x.com"}, "longpassword")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUpdateUser_EmailRecheckedOnlyWhenChanged(t *testing.T) {
	checks := 0
	store := &fakeUserStore{
		getByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Email: "a@x.com"}, nil
		},
		emailExists: func(ctx context.Context, email, excludeID string) (bool, error) {
			checks++
			assert.Equal(t, userID, excludeID)
			return false, nil
		},
		update: func(ctx context.Context, user *models.User) error { return nil },
	}
	svc := NewUserService(store)

	_, err := svc.UpdateUser(context.Background(), &models.User{ID: userID, Email: "a@x.com", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, 0, checks)

	_, err = svc.UpdateUser(context.Background(), &models.User{ID: userID, Email: "b@x.com", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, 1, checks)
}

func TestFindUserByEmail(t *testing.T) {
	store := &fakeUserStore{
		getByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return nil, repositories.ErrNotFound
		},
	}
	svc := NewUserService(store)

	_, err := svc.FindUserByEmail(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	user, err := svc.FindUserByEmail(context.Background(), "ghost@x.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserByID_MalformedID(t *testing.T) {
	_, err := NewUserService(&fakeUserStore{}).GetUserByID(context.Background(), "1")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

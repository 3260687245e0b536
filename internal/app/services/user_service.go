package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/academyadmin/academy-api/internal/pkg/dberrors"
)

// UserService defines the interface for administrator account operations
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User, password string) error
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (*models.User, error)
}

type userServiceImpl struct {
	userRepo UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo UserStore) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if !validID(id) {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

// FindUserByEmail looks an administrator up by exact email. A miss is not an
// error: it yields a nil user.
func (s *userServiceImpl) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, apperrors.NewBadRequestError("email is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// CreateUser hashes password and stores a new active administrator
func (s *userServiceImpl) CreateUser(ctx context.Context, user *models.User, password string) error {
	taken, err := s.userRepo.EmailExists(ctx, user.Email, "")
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrEmailAlreadyExists
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user.Password = digest
	user.Role = models.RoleAdmin
	user.IsActive = true
	return s.userRepo.Create(ctx, user)
}

// UpdateUser rewrites an administrator's profile. The email is re-checked
// against other users only when it changes.
func (s *userServiceImpl) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	current, err := s.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if current.Email != user.Email {
		taken, err := s.userRepo.EmailExists(ctx, user.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	user.DNI = current.DNI
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, translateNotFound(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	if !validID(id) {
		return nil, dberrors.ErrRecordToDeleteNotFound
	}
	return s.userRepo.Delete(ctx, id)
}

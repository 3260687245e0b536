package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/dberrors"
)

// AcademyService defines the interface for academy-related operations
type AcademyService interface {
	ListAcademies(ctx context.Context) ([]*models.Academy, error)
	GetAcademyByID(ctx context.Context, id string) (*models.Academy, error)
	CreateAcademy(ctx context.Context, academy *models.Academy) error
	UpdateAcademy(ctx context.Context, academy *models.Academy) error
	DeleteAcademy(ctx context.Context, id string) error
}

// academyServiceImpl implements the AcademyService interface
type academyServiceImpl struct {
	academyRepo AcademyStore
}

// NewAcademyService creates a new academy service instance
func NewAcademyService(academyRepo AcademyStore) AcademyService {
	return &academyServiceImpl{
		academyRepo: academyRepo,
	}
}

func (s *academyServiceImpl) ListAcademies(ctx context.Context) ([]*models.Academy, error) {
	academies, err := s.academyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving academies: %w", err)
	}
	return academies, nil
}

func (s *academyServiceImpl) GetAcademyByID(ctx context.Context, id string) (*models.Academy, error) {
	if !validID(id) {
		return nil, apperrors.ErrAcademyNotFound
	}

	academy, err := s.academyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrAcademyNotFound)
	}
	return academy, nil
}

func (s *academyServiceImpl) CreateAcademy(ctx context.Context, academy *models.Academy) error {
	taken, err := s.academyRepo.NameExists(ctx, academy.Name, "")
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrAcademyNameAlreadyExists
	}

	return s.academyRepo.Create(ctx, academy)
}

// UpdateAcademy rewrites an academy. The name is re-checked against other
// academies only when it changes.
func (s *academyServiceImpl) UpdateAcademy(ctx context.Context, academy *models.Academy) error {
	current, err := s.GetAcademyByID(ctx, academy.ID)
	if err != nil {
		return err
	}

	if current.Name != academy.Name {
		taken, err := s.academyRepo.NameExists(ctx, academy.Name, academy.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrAcademyNameAlreadyExists
		}
	}

	if err := s.academyRepo.Update(ctx, academy); err != nil {
		return translateNotFound(err, apperrors.ErrAcademyNotFound)
	}
	return nil
}

// DeleteAcademy removes an academy that owns no courses
func (s *academyServiceImpl) DeleteAcademy(ctx context.Context, id string) error {
	if !validID(id) {
		return dberrors.ErrRecordToDeleteNotFound
	}

	err := s.academyRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrAcademyHasCourses) {
		return apperrors.ErrAcademyHasCourses
	}
	return err
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/dberrors"
)

// EnrollService defines the interface for enroll-related operations
type EnrollService interface {
	ListEnrolls(ctx context.Context) ([]*models.Enroll, error)
	SearchEnrolls(ctx context.Context, search models.EnrollSearch) ([]*models.Certificate, error)
	GetEnrollByID(ctx context.Context, id string) (*models.Enroll, error)
	CreateEnroll(ctx context.Context, enroll *models.Enroll) error
	UpdateEnroll(ctx context.Context, id string, update models.EnrollUpdate) (*models.Enroll, error)
	DeleteEnroll(ctx context.Context, id string) (*models.Enroll, error)
}

type enrollServiceImpl struct {
	enrollRepo  EnrollStore
	studentRepo StudentStore
	courseRepo  CourseStore
}

// NewEnrollService creates a new enroll service instance
func NewEnrollService(enrollRepo EnrollStore, studentRepo StudentStore, courseRepo CourseStore) EnrollService {
	return &enrollServiceImpl{
		enrollRepo:  enrollRepo,
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
	}
}

func (s *enrollServiceImpl) ListEnrolls(ctx context.Context) ([]*models.Enroll, error) {
	enrolls, err := s.enrollRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolls: %w", err)
	}
	return enrolls, nil
}

// SearchEnrolls requires at least one of last name or dni
func (s *enrollServiceImpl) SearchEnrolls(ctx context.Context, search models.EnrollSearch) ([]*models.Certificate, error) {
	if search.IsEmpty() {
		return nil, apperrors.NewBadRequestError("lastname or dni is required")
	}
	return s.enrollRepo.Search(ctx, search)
}

func (s *enrollServiceImpl) GetEnrollByID(ctx context.Context, id string) (*models.Enroll, error) {
	if !validID(id) {
		return nil, apperrors.ErrEnrollNotFound
	}

	enroll, err := s.enrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrEnrollNotFound)
	}
	return enroll, nil
}

// CreateEnroll stores a single enroll after checking both ends exist
func (s *enrollServiceImpl) CreateEnroll(ctx context.Context, enroll *models.Enroll) error {
	checks := []struct {
		id     string
		exists func(context.Context, string) (bool, error)
		msg    string
	}{
		{enroll.StudentID, s.studentRepo.Exists, "student does not exist"},
		{enroll.CourseID, s.courseRepo.Exists, "course does not exist"},
	}
	for _, check := range checks {
		if !validID(check.id) {
			return apperrors.NewBadRequestError(check.msg)
		}
		found, err := check.exists(ctx, check.id)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.NewBadRequestError(check.msg)
		}
	}

	if enroll.EmittedAt.IsZero() {
		enroll.EmittedAt = time.Now().UTC()
	}
	return s.enrollRepo.Create(ctx, enroll)
}

// UpdateEnroll changes the emission date, finish date or bachelor flag
func (s *enrollServiceImpl) UpdateEnroll(ctx context.Context, id string, update models.EnrollUpdate) (*models.Enroll, error) {
	if !validID(id) {
		return nil, apperrors.ErrEnrollNotFound
	}

	enroll, err := s.enrollRepo.Update(ctx, id, update)
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrEnrollNotFound)
	}
	return enroll, nil
}

func (s *enrollServiceImpl) DeleteEnroll(ctx context.Context, id string) (*models.Enroll, error) {
	if !validID(id) {
		return nil, dberrors.ErrRecordToDeleteNotFound
	}
	return s.enrollRepo.Delete(ctx, id)
}

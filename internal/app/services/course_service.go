package services

import (
	"context"
	"fmt"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/dberrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id string) (*repositories.CourseDeletion, error)
	ListCourseEnrolls(ctx context.Context, id string) ([]*models.Enroll, error)
}

type courseServiceImpl struct {
	courseRepo  CourseStore
	academyRepo AcademyStore
	enrollRepo  EnrollStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore, academyRepo AcademyStore, enrollRepo EnrollStore) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		academyRepo: academyRepo,
		enrollRepo:  enrollRepo,
	}
}

func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	if !validID(id) {
		return nil, apperrors.ErrCourseNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrCourseNotFound)
	}
	return course, nil
}

func (s *courseServiceImpl) checkAcademy(ctx context.Context, academyID string) error {
	if !validID(academyID) {
		return apperrors.NewBadRequestError("academy does not exist")
	}
	found, err := s.academyRepo.Exists(ctx, academyID)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewBadRequestError("academy does not exist")
	}
	return nil
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.checkAcademy(ctx, course.AcademyID); err != nil {
		return err
	}
	return s.courseRepo.Create(ctx, course)
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if !validID(course.ID) {
		return apperrors.ErrCourseNotFound
	}
	if err := s.checkAcademy(ctx, course.AcademyID); err != nil {
		return err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return translateNotFound(err, apperrors.ErrCourseNotFound)
	}
	return nil
}

// DeleteCourse removes a course together with its enrolls
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) (*repositories.CourseDeletion, error) {
	if !validID(id) {
		return nil, dberrors.ErrRecordToDeleteNotFound
	}
	return s.courseRepo.Delete(ctx, id)
}

func (s *courseServiceImpl) ListCourseEnrolls(ctx context.Context, id string) ([]*models.Enroll, error) {
	if !validID(id) {
		return []*models.Enroll{}, nil
	}

	enrolls, err := s.enrollRepo.ListByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course enrolls: %w", err)
	}
	return enrolls, nil
}

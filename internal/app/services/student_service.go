package services

import (
	"context"
	"fmt"
	"time"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/academyadmin/academy-api/internal/pkg/dberrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	SearchStudents(ctx context.Context, search models.StudentSearch) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student, password string) error
	UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) (*models.Student, error)
	ListStudentEnrolls(ctx context.Context, id string) ([]*models.Enroll, error)
	EnrollStudent(ctx context.Context, id string, enrolls []*models.Enroll) (*models.Student, error)
}

type studentServiceImpl struct {
	studentRepo StudentStore
	userRepo    UserStore
	enrollRepo  EnrollStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, userRepo UserStore, enrollRepo EnrollStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		enrollRepo:  enrollRepo,
	}
}

func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// SearchStudents requires at least one of last name or dni
func (s *studentServiceImpl) SearchStudents(ctx context.Context, search models.StudentSearch) ([]*models.Student, error) {
	if search.IsEmpty() {
		return nil, apperrors.NewBadRequestError("dni or lastname is required")
	}
	return s.studentRepo.Search(ctx, search)
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	if !validID(id) {
		return nil, apperrors.ErrStudentNotFound
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrStudentNotFound)
	}
	return student, nil
}

func (s *studentServiceImpl) checkUnique(ctx context.Context, email string, dni *string, excludeUserID string) error {
	if email != "" {
		taken, err := s.userRepo.EmailExists(ctx, email, excludeUserID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	if dni != nil && *dni != "" {
		taken, err := s.userRepo.DNIExists(ctx, *dni, excludeUserID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrDNIAlreadyExists
		}
	}
	return nil
}

// CreateStudent stores the student and its user row. The password is
// optional for students; when given it is hashed.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student, password string) error {
	if student.User == nil {
		return apperrors.NewBadRequestError("student user is required")
	}
	if err := s.checkUnique(ctx, student.User.Email, student.User.DNI, ""); err != nil {
		return err
	}

	if password != "" {
		digest, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		student.User.Password = digest
	}

	student.User.Role = models.RoleStudent
	student.User.IsActive = true
	return s.studentRepo.Create(ctx, student)
}

// UpdateStudent rewrites a student. Email and dni are re-checked against
// other users only when they change.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.User == nil {
		return nil, apperrors.NewBadRequestError("student user is required")
	}

	current, err := s.GetStudentByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	email := ""
	if current.User.Email != student.User.Email {
		email = student.User.Email
	}
	var dni *string
	if !sameDNI(current.User.DNI, student.User.DNI) {
		dni = student.User.DNI
	}
	if err := s.checkUnique(ctx, email, dni, current.UserID); err != nil {
		return nil, err
	}

	updated, err := s.studentRepo.Update(ctx, student)
	if err != nil {
		return nil, translateNotFound(err, apperrors.ErrStudentNotFound)
	}
	return updated, nil
}

func sameDNI(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DeleteStudent removes the student, its enrolls and its user row
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) (*models.Student, error) {
	if !validID(id) {
		return nil, dberrors.ErrRecordToDeleteNotFound
	}
	return s.studentRepo.Delete(ctx, id)
}

func (s *studentServiceImpl) ListStudentEnrolls(ctx context.Context, id string) ([]*models.Enroll, error) {
	if !validID(id) {
		return []*models.Enroll{}, nil
	}
	return s.enrollRepo.ListByStudent(ctx, id)
}

// EnrollStudent enrolls a student into every given course at once and
// returns the student with all of its enrolls.
func (s *studentServiceImpl) EnrollStudent(ctx context.Context, id string, enrolls []*models.Enroll) (*models.Student, error) {
	if len(enrolls) == 0 {
		return nil, apperrors.NewBadRequestError("enrolls must contain at least one course")
	}

	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, e := range enrolls {
		if e.EmittedAt.IsZero() {
			e.EmittedAt = now
		}
	}

	if err := s.enrollRepo.CreateMany(ctx, id, enrolls); err != nil {
		return nil, err
	}

	all, err := s.enrollRepo.ListByStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Enrolls = make([]models.Enroll, 0, len(all))
	for _, e := range all {
		student.Enrolls = append(student.Enrolls, *e)
	}
	student.Count = &models.EnrollCount{Enrolls: len(all)}
	return student, nil
}

package services

import (
	"context"
	"errors"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserStore is the persistence surface used for administrator accounts
type UserStore interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) (*models.User, error)
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
	DNIExists(ctx context.Context, dni, excludeID string) (bool, error)
}

// StudentStore is the persistence surface used for students
type StudentStore interface {
	List(ctx context.Context) ([]*models.Student, error)
	Search(ctx context.Context, search models.StudentSearch) ([]*models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, id string) (*models.Student, error)
}

// AcademyStore is the persistence surface used for academies
type AcademyStore interface {
	List(ctx context.Context) ([]*models.Academy, error)
	GetByID(ctx context.Context, id string) (*models.Academy, error)
	Create(ctx context.Context, academy *models.Academy) error
	Update(ctx context.Context, academy *models.Academy) error
	Delete(ctx context.Context, id string) error
	NameExists(ctx context.Context, name, excludeID string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// CourseStore is the persistence surface used for courses
type CourseStore interface {
	List(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) (*repositories.CourseDeletion, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// EnrollStore is the persistence surface used for enrolls
type EnrollStore interface {
	List(ctx context.Context) ([]*models.Enroll, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.Enroll, error)
	ListByCourse(ctx context.Context, courseID string) ([]*models.Enroll, error)
	Search(ctx context.Context, search models.EnrollSearch) ([]*models.Certificate, error)
	GetByID(ctx context.Context, id string) (*models.Enroll, error)
	Create(ctx context.Context, enroll *models.Enroll) error
	CreateMany(ctx context.Context, studentID string, enrolls []*models.Enroll) error
	Update(ctx context.Context, id string, update models.EnrollUpdate) (*models.Enroll, error)
	Delete(ctx context.Context, id string) (*models.Enroll, error)
}

// Services holds all the service instances
type Services struct {
	AuthService    *AuthService
	UserService    UserService
	StudentService StudentService
	AcademyService AcademyService
	CourseService  CourseService
	EnrollService  EnrollService
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, jwtService, logger),
		UserService:    NewUserService(repos.UserRepository),
		StudentService: NewStudentService(repos.StudentRepository, repos.UserRepository, repos.EnrollRepository),
		AcademyService: NewAcademyService(repos.AcademyRepository),
		CourseService:  NewCourseService(repos.CourseRepository, repos.AcademyRepository, repos.EnrollRepository),
		EnrollService:  NewEnrollService(repos.EnrollRepository, repos.StudentRepository, repos.CourseRepository),
	}
}

// validID reports whether id can name a stored row
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// translateNotFound swaps the repository not-found error for the entity's own
func translateNotFound(err, notFound error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return err
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studentID = "5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c1d"

func strPtr(s string) *string { return &s }

func currentStudent(id string) *models.Student {
	return &models.Student{
		ID:     id,
		UserID: userID,
		User:   &models.User{ID: userID, Email: "s@x.com", DNI: strPtr("111")},
	}
}

func TestSearchStudents_RequiresAKey(t *testing.T) {
	svc := NewStudentService(&fakeStudentStore{}, &fakeUserStore{}, &fakeEnrollStore{})

	_, err := svc.SearchStudents(context.Background(), models.StudentSearch{})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateStudent_DuplicateDNI(t *testing.T) {
	users := &fakeUserStore{
		emailExists: func(ctx context.Context, email, excludeID string) (bool, error) { return false, nil },
		dniExists:   func(ctx context.Context, dni, excludeID string) (bool, error) { return dni == "111", nil },
	}
	svc := NewStudentService(&fakeStudentStore{}, users, &fakeEnrollStore{})

	err := svc.CreateStudent(context.Background(), &models.Student{User: &models.User{Email: "s@x.com", DNI: strPtr("111")}}, "")
	assert.ErrorIs(t, err, apperrors.ErrDNIAlreadyExists)
}

func TestCreateStudent_SetsStudentRole(t *testing.T) {
	var created *models.Student
	users := &fakeUserStore{
		emailExists: func(ctx context.Context, email, excludeID string) (bool, error) { return false, nil },
		dniExists:   func(ctx context.Context, dni, excludeID string) (bool, error) { return false, nil },
	}
	students := &fakeStudentStore{
		create: func(ctx context.Context, student *models.Student) error {
			created = student
			return nil
		},
	}
	svc := NewStudentService(students, users, &fakeEnrollStore{})

	err := svc.CreateStudent(context.Background(), &models.Student{Partner: true, User: &models.User{Email: "s@x.com", DNI: strPtr("222")}}, "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, created.User.Role)
	assert.Empty(t, created.User.Password)
}

func TestUpdateStudent_RechecksOnlyChangedFields(t *testing.T) {
	var dniChecks, emailChecks int
	users := &fakeUserStore{
		emailExists: func(ctx context.Context, email, excludeID string) (bool, error) {
			emailChecks++
			return false, nil
		},
		dniExists: func(ctx context.Context, dni, excludeID string) (bool, error) {
			dniChecks++
			assert.Equal(t, userID, excludeID)
			return true, nil
		},
	}
	students := &fakeStudentStore{
		getByID: func(ctx context.Context, id string) (*models.Student, error) { return currentStudent(id), nil },
	}
	svc := NewStudentService(students, users, &fakeEnrollStore{})

	_, err := svc.UpdateStudent(context.Background(), &models.Student{
		ID:   studentID,
		User: &models.User{Email: "s@x.com", DNI: strPtr("999")},
	})
	assert.ErrorIs(t, err, apperrors.ErrDNIAlreadyExists)
	assert.Equal(t, 0, emailChecks)
	assert.Equal(t, 1, dniChecks)
}

func TestEnrollStudent_CreatesAllAndReturnsStudent(t *testing.T) {
	var written []*models.Enroll
	students := &fakeStudentStore{
		getByID: func(ctx context.Context, id string) (*models.Student, error) { return currentStudent(id), nil },
	}
	enrolls := &fakeEnrollStore{
		createMany: func(ctx context.Context, id string, items []*models.Enroll) error {
			assert.Equal(t, studentID, id)
			written = items
			return nil
		},
		listByStudent: func(ctx context.Context, id string) ([]*models.Enroll, error) {
			out := make([]*models.Enroll, 0, len(written))
			for _, e := range written {
				out = append(out, &models.Enroll{CourseID: e.CourseID, StudentID: id})
			}
			return out, nil
		},
	}
	svc := NewStudentService(students, &fakeUserStore{}, enrolls)

	emitted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	student, err := svc.EnrollStudent(context.Background(), studentID, []*models.Enroll{
		{CourseID: "c1", EmittedAt: emitted},
		{CourseID: "c2"},
		{CourseID: "c3"},
	})
	require.NoError(t, err)
	require.Len(t, student.Enrolls, 3)
	assert.Equal(t, 3, student.Count.Enrolls)
	for _, e := range student.Enrolls {
		assert.Equal(t, studentID, e.StudentID)
	}
	assert.Equal(t, emitted, written[0].EmittedAt)
	assert.False(t, written[1].EmittedAt.IsZero())
}

func TestEnrollStudent_Rejections(t *testing.T) {
	students := &fakeStudentStore{
		getByID: func(ctx context.Context, id string) (*models.Student, error) { return nil, repositories.ErrNotFound },
	}
	svc := NewStudentService(students, &fakeUserStore{}, &fakeEnrollStore{})

	_, err := svc.EnrollStudent(context.Background(), studentID, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.EnrollStudent(context.Background(), studentID, []*models.Enroll{{CourseID: "c1"}})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

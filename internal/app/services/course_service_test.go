package services

import (
	"context"
	"testing"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const courseID = "7e6d5c4b-3a29-4180-9f8e-7d6c5b4a3928"

func TestCreateCourse_UnknownAcademy(t *testing.T) {
	academies := &fakeAcademyStore{
		exists: func(ctx context.Context, id string) (bool, error) { return false, nil },
	}
	svc := NewCourseService(&fakeCourseStore{}, academies, &fakeEnrollStore{})

	err := svc.CreateCourse(context.Background(), &models.Course{Name: "Go", AcademyID: academyID})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	err = svc.CreateCourse(context.Background(), &models.Course{Name: "Go", AcademyID: "x"})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateCourse_NotFound(t *testing.T) {
	academies := &fakeAcademyStore{
		exists: func(ctx context.Context, id string) (bool, error) { return true, nil },
	}
	courses := &fakeCourseStore{
		update: func(ctx context.Context, course *models.Course) error { return repositories.ErrNotFound },
	}
	svc := NewCourseService(courses, academies, &fakeEnrollStore{})

	err := svc.UpdateCourse(context.Background(), &models.Course{ID: courseID, AcademyID: academyID})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestDeleteCourse_ReturnsDeletion(t *testing.T) {
	courses := &fakeCourseStore{
		delete: func(ctx context.Context, id string) (*repositories.CourseDeletion, error) {
			return &repositories.CourseDeletion{DeletedEnrolls: 4, Course: &models.Course{ID: id}}, nil
		},
	}
	svc := NewCourseService(courses, &fakeAcademyStore{}, &fakeEnrollStore{})

	result, err := svc.DeleteCourse(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.DeletedEnrolls)
}

func TestGetCourseByID_NotFound(t *testing.T) {
	courses := &fakeCourseStore{
		getByID: func(ctx context.Context, id string) (*models.Course, error) { return nil, repositories.ErrNotFound },
	}
	svc := NewCourseService(courses, &fakeAcademyStore{}, &fakeEnrollStore{})

	_, err := svc.GetCourseByID(context.Background(), courseID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Equal(t, "Course not found", err.Error())
}

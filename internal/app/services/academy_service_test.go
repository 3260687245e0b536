package services

import (
	"context"
	"errors"
	"testing"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/dberrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	academyID = "3f2a1b0c-9d8e-4f7a-8b6c-5d4e3f2a1b0c"
	otherID   = "8c7b6a59-4e3d-4c2b-9a18-0f1e2d3c4b5a"
)

func TestCreateAcademy_DuplicateName(t *testing.T) {
	store := &fakeAcademyStore{
		nameExists: func(ctx context.Context, name, excludeID string) (bool, error) {
			assert.Equal(t, "Tech", name)
			assert.Empty(t, excludeID)
			return true, nil
		},
	}

	err := NewAcademyService(store).CreateAcademy(context.Background(), &models.Academy{Name: "Tech"})
	assert.ErrorIs(t, err, apperrors.ErrAcademyNameAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateValue)
}

func TestUpdateAcademy_SameNameSkipsDuplicateCheck(t *testing.T) {
	updated := false
	store := &fakeAcademyStore{
		getByID: func(ctx context.Context, id string) (*models.Academy, error) {
			return &models.Academy{ID: id, Name: "Tech"}, nil
		},
		update: func(ctx context.Context, academy *models.Academy) error {
			updated = true
			return nil
		},
	}

	err := NewAcademyService(store).UpdateAcademy(context.Background(), &models.Academy{ID: academyID, Name: "Tech", Description: "new"})
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestUpdateAcademy_RenameToTakenName(t *testing.T) {
	store := &fakeAcademyStore{
		getByID: func(ctx context.Context, id string) (*models.Academy, error) {
			return &models.Academy{ID: id, Name: "Tech"}, nil
		},
		nameExists: func(ctx context.Context, name, excludeID string) (bool, error) {
			assert.Equal(t, "Arts", name)
			assert.Equal(t, academyID, excludeID)
			return true, nil
		},
	}

	err := NewAcademyService(store).UpdateAcademy(context.Background(), &models.Academy{ID: academyID, Name: "Arts"})
	assert.ErrorIs(t, err, apperrors.ErrAcademyNameAlreadyExists)
}

func TestUpdateAcademy_NotFound(t *testing.T) {
	store := &fakeAcademyStore{
		getByID: func(ctx context.Context, id string) (*models.Academy, error) {
			return nil, repositories.ErrNotFound
		},
	}

	err := NewAcademyService(store).UpdateAcademy(context.Background(), &models.Academy{ID: academyID, Name: "Arts"})
	assert.ErrorIs(t, err, apperrors.ErrAcademyNotFound)

	err = NewAcademyService(store).UpdateAcademy(context.Background(), &models.Academy{ID: "42", Name: "Arts"})
	assert.ErrorIs(t, err, apperrors.ErrAcademyNotFound)
}

func TestDeleteAcademy(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		repoErr error
		wantErr error
	}{
		{name: "with courses", id: academyID, repoErr: repositories.ErrAcademyHasCourses, wantErr: apperrors.ErrConflict},
		{name: "missing", id: academyID, repoErr: dberrors.ErrRecordToDeleteNotFound, wantErr: dberrors.ErrRecordToDeleteNotFound},
		{name: "malformed id", id: "abc", wantErr: dberrors.ErrRecordToDeleteNotFound},
		{name: "ok", id: academyID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeAcademyStore{
				delete: func(ctx context.Context, id string) error { return tt.repoErr },
			}

			err := NewAcademyService(store).DeleteAcademy(context.Background(), tt.id)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListAcademies_WrapsStoreError(t *testing.T) {
	boom := errors.New("boom")
	store := &fakeAcademyStore{
		list: func(ctx context.Context) ([]*models.Academy, error) { return nil, boom },
	}

	_, err := NewAcademyService(store).ListAcademies(context.Background())
	assert.ErrorIs(t, err, boom)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDepartmentStore struct {
	department      *models.Department
	created         *models.Department
	updated         *models.Department
	deactivatedID   int64
	deactivateCalls int
}

func (s *stubDepartmentStore) Create(_ context.Context, department *models.Department) error {
	department.ID = 3
	s.created = department
	return nil
}

func (s *stubDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	if s.department != nil && s.department.ID == id {
		return s.department, nil
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (s *stubDepartmentStore) GetAll(_ context.Context, _ bool) ([]*models.Department, error) {
	if s.department == nil {
		return nil, nil
	}
	return []*models.Department{s.department}, nil
}

func (s *stubDepartmentStore) Update(_ context.Context, department *models.Department) error {
	s.updated = department
	return nil
}

func (s *stubDepartmentStore) Deactivate(_ context.Context, id int64) error {
	s.deactivateCalls++
	s.deactivatedID = id
	return nil
}

type stubProgramCounter struct {
	count int64
}

func (s *stubProgramCounter) CountActiveByDepartmentID(_ context.Context, _ int64) (int64, error) {
	return s.count, nil
}

func TestCreateDepartment(t *testing.T) {
	t.Run("without hod", func(t *testing.T) {
		store := &stubDepartmentStore{}
		svc := NewDepartmentService(store, &stubProgramCounter{}, &stubFacultyStore{}, zerolog.Nop())

		department, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentRequest{
			Name: "Computer Science and Engineering", Code: "CSE",
		})
		require.NoError(t, err)
		assert.True(t, department.IsActive)
		assert.Nil(t, department.HODFacultyID)
		require.NotNil(t, store.created)
	})

	t.Run("unknown hod faculty rejected", func(t *testing.T) {
		store := &stubDepartmentStore{}
		svc := NewDepartmentService(store, &stubProgramCounter{}, &stubFacultyStore{}, zerolog.Nop())

		_, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentRequest{
			Name: "CSE", Code: "CSE", HODFacultyID: ptrInt64(404),
		})
		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
		assert.Nil(t, store.created)
	})

	t.Run("existing hod faculty accepted", func(t *testing.T) {
		store := &stubDepartmentStore{}
		faculties := &stubFacultyStore{faculty: &models.Faculty{ID: 9, IsActive: true}}
		svc := NewDepartmentService(store, &stubProgramCounter{}, faculties, zerolog.Nop())

		department, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentRequest{
			Name: "CSE", Code: "CSE", HODFacultyID: ptrInt64(9),
		})
		require.NoError(t, err)
		require.NotNil(t, department.HODFacultyID)
		assert.Equal(t, int64(9), *department.HODFacultyID)
	})
}

func TestGetDepartment_KeepsRowTimestamps(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)
	store := &stubDepartmentStore{
		department: &models.Department{
			ID: 3, Name: "CSE", Code: "CSE", IsActive: true,
			CreatedAt: created, UpdatedAt: updated,
		},
	}
	svc := NewDepartmentService(store, &stubProgramCounter{}, &stubFacultyStore{}, zerolog.Nop())

	department, err := svc.GetDepartment(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, created, department.CreatedAt)
	assert.Equal(t, updated, department.UpdatedAt)
}

func TestUpdateDepartment_ReassignsHOD(t *testing.T) {
	store := &stubDepartmentStore{
		department: &models.Department{ID: 3, Name: "CSE", Code: "CSE", HODFacultyID: ptrInt64(9), IsActive: true},
	}
	faculties := &stubFacultyStore{faculty: &models.Faculty{ID: 11, IsActive: true}}
	svc := NewDepartmentService(store, &stubProgramCounter{}, faculties, zerolog.Nop())

	department, err := svc.UpdateDepartment(context.Background(), 3, dto.UpdateDepartmentRequest{
		Name: "CSE", Code: "CSE", HODFacultyID: ptrInt64(11),
	})
	require.NoError(t, err)
	require.NotNil(t, store.updated)
	assert.Equal(t, int64(11), *department.HODFacultyID)
}

func TestDeactivateDepartment(t *testing.T) {
	t.Run("blocked while active programs exist", func(t *testing.T) {
		store := &stubDepartmentStore{
			department: &models.Department{ID: 3, Name: "CSE", IsActive: true},
		}
		svc := NewDepartmentService(store, &stubProgramCounter{count: 2}, &stubFacultyStore{}, zerolog.Nop())

		err := svc.DeactivateDepartment(context.Background(), 3)
		assert.ErrorIs(t, err, apperrors.ErrDepartmentHasActivePrograms)
		assert.Zero(t, store.deactivateCalls, "department must be left untouched")
	})

	t.Run("succeeds with no active programs", func(t *testing.T) {
		store := &stubDepartmentStore{
			department: &models.Department{ID: 3, Name: "CSE", IsActive: true},
		}
		svc := NewDepartmentService(store, &stubProgramCounter{}, &stubFacultyStore{}, zerolog.Nop())

		err := svc.DeactivateDepartment(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, 1, store.deactivateCalls)
		assert.Equal(t, int64(3), store.deactivatedID)
	})

	t.Run("unknown department", func(t *testing.T) {
		svc := NewDepartmentService(&stubDepartmentStore{}, &stubProgramCounter{}, &stubFacultyStore{}, zerolog.Nop())

		err := svc.DeactivateDepartment(context.Background(), 404)
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})
}

package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppraisalStore struct {
	appraisal   *models.Appraisal
	statusSet   models.AppraisalStatus
	remarksSet  *string
	statusCalls int
	updateCalls int
}

func (s *stubAppraisalStore) Create(_ context.Context, appraisal *models.Appraisal) error {
	appraisal.ID = 30
	return nil
}

func (s *stubAppraisalStore) GetByID(_ context.Context, id int64) (*models.Appraisal, error) {
	if s.appraisal != nil && s.appraisal.ID == id {
		return s.appraisal, nil
	}
	return nil, apperrors.ErrAppraisalNotFound
}

func (s *stubAppraisalStore) GetAll(_ context.Context, _, _ *int64, _, _ int) ([]*models.Appraisal, int64, error) {
	if s.appraisal == nil {
		return nil, 0, nil
	}
	return []*models.Appraisal{s.appraisal}, 1, nil
}

func (s *stubAppraisalStore) Update(_ context.Context, _ *models.Appraisal) error {
	s.updateCalls++
	return nil
}

func (s *stubAppraisalStore) UpdateStatus(_ context.Context, _ int64, status models.AppraisalStatus, remarks *string) error {
	s.statusCalls++
	s.statusSet = status
	s.remarksSet = remarks
	return nil
}

func TestCreateAppraisal(t *testing.T) {
	t.Run("opens as draft", func(t *testing.T) {
		faculties := &stubFacultyStore{faculty: &models.Faculty{ID: 9, IsActive: true}}
		svc := NewAppraisalService(&stubAppraisalStore{}, faculties, zerolog.Nop())

		appraisal, err := svc.CreateAppraisal(context.Background(), dto.CreateAppraisalRequest{
			FacultyID: 9, AcademicYear: "2025-26",
		})
		require.NoError(t, err)
		assert.Equal(t, models.AppraisalDraft, appraisal.Status)
		assert.Equal(t, "2025-26", appraisal.AcademicYear)
	})

	t.Run("unknown faculty rejected", func(t *testing.T) {
		svc := NewAppraisalService(&stubAppraisalStore{}, &stubFacultyStore{}, zerolog.Nop())

		_, err := svc.CreateAppraisal(context.Background(), dto.CreateAppraisalRequest{
			FacultyID: 404, AcademicYear: "2025-26",
		})
		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	})
}

func TestUpdateAppraisal(t *testing.T) {
	t.Run("draft is editable", func(t *testing.T) {
		store := &stubAppraisalStore{
			appraisal: &models.Appraisal{ID: 30, Status: models.AppraisalDraft},
		}
		svc := NewAppraisalService(store, &stubFacultyStore{}, zerolog.Nop())

		score := 85
		appraisal, err := svc.UpdateAppraisal(context.Background(), 30, dto.UpdateAppraisalRequest{
			SelfScore: &score,
		})
		require.NoError(t, err)
		require.NotNil(t, appraisal.SelfScore)
		assert.Equal(t, 85, *appraisal.SelfScore)
		assert.Equal(t, 1, store.updateCalls)
	})

	t.Run("submitted is immutable to its owner", func(t *testing.T) {
		store := &stubAppraisalStore{
			appraisal: &models.Appraisal{ID: 30, Status: models.AppraisalSubmitted},
		}
		svc := NewAppraisalService(store, &stubFacultyStore{}, zerolog.Nop())

		_, err := svc.UpdateAppraisal(context.Background(), 30, dto.UpdateAppraisalRequest{})
		assert.ErrorIs(t, err, apperrors.ErrAppraisalNotEditable)
		assert.Zero(t, store.updateCalls)
	})
}

func TestSubmitAppraisal(t *testing.T) {
	t.Run("draft moves to submitted", func(t *testing.T) {
		store := &stubAppraisalStore{
			appraisal: &models.Appraisal{ID: 30, Status: models.AppraisalDraft},
		}
		svc := NewAppraisalService(store, &stubFacultyStore{}, zerolog.Nop())

		appraisal, err := svc.SubmitAppraisal(context.Background(), 30)
		require.NoError(t, err)
		assert.Equal(t, models.AppraisalSubmitted, appraisal.Status)
		assert.Equal(t, models.AppraisalSubmitted, store.statusSet)
	})

	t.Run("double submit rejected", func(t *testing.T) {
		store := &stubAppraisalStore{
			appraisal: &models.Appraisal{ID: 30, Status: models.AppraisalSubmitted},
		}
		svc := NewAppraisalService(store, &stubFacultyStore{}, zerolog.Nop())

		_, err := svc.SubmitAppraisal(context.Background(), 30)
		assert.ErrorIs(t, err, apperrors.ErrAppraisalNotEditable)
	})
}

func TestReviewAppraisal(t *testing.T) {
	t.Run("submitted moves to reviewed with verdict", func(t *testing.T) {
		store := &stubAppraisalStore{
			appraisal: &models.Appraisal{ID: 30, Status: models.AppraisalSubmitted},
		}
		svc := NewAppraisalService(store, &stubFacultyStore{}, zerolog.Nop())

		appraisal, err := svc.ReviewAppraisal(context.Background(), 30, dto.ReviewAppraisalRequest{
			Remarks: ptrString("Meets expectations"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.AppraisalReviewed, appraisal.Status)
		require.NotNil(t, store.remarksSet)
		assert.Equal(t, "Meets expectations", *store.remarksSet)
	})

	t.Run("draft cannot be reviewed", func(t *testing.T) {
		store := &stubAppraisalStore{
			appraisal: &models.Appraisal{ID: 30, Status: models.AppraisalDraft},
		}
		svc := NewAppraisalService(store, &stubFacultyStore{}, zerolog.Nop())

		_, err := svc.ReviewAppraisal(context.Background(), 30, dto.ReviewAppraisalRequest{})
		assert.ErrorIs(t, err, apperrors.ErrAppraisalNotEditable)
		assert.Zero(t, store.statusCalls)
	})

	t.Run("reviewed is terminal", func(t *testing.T) {
		store := &stubAppraisalStore{
			appraisal: &models.Appraisal{ID: 30, Status: models.AppraisalReviewed},
		}
		svc := NewAppraisalService(store, &stubFacultyStore{}, zerolog.Nop())

		_, err := svc.ReviewAppraisal(context.Background(), 30, dto.ReviewAppraisalRequest{})
		assert.ErrorIs(t, err, apperrors.ErrAppraisalNotEditable)
	})
}

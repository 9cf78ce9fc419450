package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
)

// AppraisalStore defines the appraisal persistence operations used by the service
type AppraisalStore interface {
	Create(ctx context.Context, appraisal *models.Appraisal) error
	GetByID(ctx context.Context, id int64) (*models.Appraisal, error)
	GetAll(ctx context.Context, facultyID, departmentID *int64, offset, limit int) ([]*models.Appraisal, int64, error)
	Update(ctx context.Context, appraisal *models.Appraisal) error
	UpdateStatus(ctx context.Context, id int64, status models.AppraisalStatus, remarks *string) error
}

// AppraisalService manages the faculty self-appraisal lifecycle:
// DRAFT -> SUBMITTED -> REVIEWED.
type AppraisalService struct {
	appraisalRepo AppraisalStore
	facultyRepo   FacultyLookup
	logger        zerolog.Logger
}

// NewAppraisalService creates a new AppraisalService
func NewAppraisalService(appraisalRepo AppraisalStore, facultyRepo FacultyLookup, logger zerolog.Logger) *AppraisalService {
	return &AppraisalService{
		appraisalRepo: appraisalRepo,
		facultyRepo:   facultyRepo,
		logger:        logger.With().Str("service", "appraisal").Logger(),
	}
}

// CreateAppraisal opens a draft appraisal for a faculty member
func (s *AppraisalService) CreateAppraisal(ctx context.Context, req dto.CreateAppraisalRequest) (*models.Appraisal, error) {
	if _, err := s.facultyRepo.GetByID(ctx, req.FacultyID); err != nil {
		return nil, err
	}

	appraisal := &models.Appraisal{
		FacultyID:    req.FacultyID,
		AcademicYear: req.AcademicYear,
		Status:       models.AppraisalDraft,
	}
	if err := s.appraisalRepo.Create(ctx, appraisal); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("appraisalId", appraisal.ID).Int64("facultyId", req.FacultyID).Msg("Appraisal opened")
	return appraisal, nil
}

// GetAppraisal retrieves an appraisal by ID
func (s *AppraisalService) GetAppraisal(ctx context.Context, id int64) (*models.Appraisal, error) {
	return s.appraisalRepo.GetByID(ctx, id)
}

// ListAppraisals lists appraisals filtered by faculty or department
func (s *AppraisalService) ListAppraisals(ctx context.Context, facultyID, departmentID *int64, offset, limit int) ([]*models.Appraisal, int64, error) {
	return s.appraisalRepo.GetAll(ctx, facultyID, departmentID, offset, limit)
}

// UpdateAppraisal edits the self-assessment of a draft appraisal. Submitted
// and reviewed appraisals are immutable to their owner.
func (s *AppraisalService) UpdateAppraisal(ctx context.Context, id int64, req dto.UpdateAppraisalRequest) (*models.Appraisal, error) {
	appraisal, err := s.appraisalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appraisal.Status != models.AppraisalDraft {
		return nil, apperrors.ErrAppraisalNotEditable
	}

	if req.SelfScore != nil {
		appraisal.SelfScore = req.SelfScore
	}
	if req.Remarks != nil {
		appraisal.Remarks = req.Remarks
	}

	if err := s.appraisalRepo.Update(ctx, appraisal); err != nil {
		return nil, err
	}
	return appraisal, nil
}

// SubmitAppraisal moves a draft to SUBMITTED
func (s *AppraisalService) SubmitAppraisal(ctx context.Context, id int64) (*models.Appraisal, error) {
	appraisal, err := s.appraisalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appraisal.Status != models.AppraisalDraft {
		return nil, apperrors.ErrAppraisalNotEditable
	}

	if err := s.appraisalRepo.UpdateStatus(ctx, id, models.AppraisalSubmitted, nil); err != nil {
		return nil, err
	}
	appraisal.Status = models.AppraisalSubmitted

	s.logger.Info().Int64("appraisalId", id).Msg("Appraisal submitted")
	return appraisal, nil
}

// ReviewAppraisal moves a submitted appraisal to REVIEWED, optionally
// replacing the remarks with the reviewer's verdict
func (s *AppraisalService) ReviewAppraisal(ctx context.Context, id int64, req dto.ReviewAppraisalRequest) (*models.Appraisal, error) {
	appraisal, err := s.appraisalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appraisal.Status != models.AppraisalSubmitted {
		return nil, apperrors.ErrAppraisalNotEditable
	}

	if err := s.appraisalRepo.UpdateStatus(ctx, id, models.AppraisalReviewed, req.Remarks); err != nil {
		return nil, err
	}
	appraisal.Status = models.AppraisalReviewed
	if req.Remarks != nil {
		appraisal.Remarks = req.Remarks
	}

	s.logger.Info().Int64("appraisalId", id).Msg("Appraisal reviewed")
	return appraisal, nil
}

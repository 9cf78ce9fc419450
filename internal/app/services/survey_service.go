package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
)

// SurveyStore defines the survey persistence operations used by the service
type SurveyStore interface {
	Create(ctx context.Context, survey *models.FeedbackSurvey) error
	GetByID(ctx context.Context, id int64) (*models.FeedbackSurvey, error)
	GetAll(ctx context.Context, programID *int64, status *models.SurveyStatus, offset, limit int) ([]*models.FeedbackSurvey, int64, error)
	Update(ctx context.Context, survey *models.FeedbackSurvey) error
	UpdateStatus(ctx context.Context, id int64, status models.SurveyStatus) error
	Delete(ctx context.Context, id int64) error
}

// ProgramLookup checks program existence for survey scoping
type ProgramLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Program, error)
}

// SurveyService manages feedback surveys and their DRAFT/OPEN/CLOSED lifecycle
type SurveyService struct {
	surveyRepo  SurveyStore
	programRepo ProgramLookup
	logger      zerolog.Logger
}

// NewSurveyService creates a new SurveyService
func NewSurveyService(surveyRepo SurveyStore, programRepo ProgramLookup, logger zerolog.Logger) *SurveyService {
	return &SurveyService{
		surveyRepo:  surveyRepo,
		programRepo: programRepo,
		logger:      logger.With().Str("service", "survey").Logger(),
	}
}

// CreateSurvey creates a draft survey, optionally scoped to a program
func (s *SurveyService) CreateSurvey(ctx context.Context, req dto.CreateSurveyRequest) (*models.FeedbackSurvey, error) {
	if req.ProgramID != nil {
		if _, err := s.programRepo.GetByID(ctx, *req.ProgramID); err != nil {
			return nil, err
		}
	}

	survey := &models.FeedbackSurvey{
		Title:       req.Title,
		Description: req.Description,
		ProgramID:   req.ProgramID,
		Status:      models.SurveyDraft,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("surveyId", survey.ID).Msg("Survey created")
	return survey, nil
}

// GetSurvey retrieves a survey by ID
func (s *SurveyService) GetSurvey(ctx context.Context, id int64) (*models.FeedbackSurvey, error) {
	return s.surveyRepo.GetByID(ctx, id)
}

// ListSurveys lists surveys with optional program and status filtering
func (s *SurveyService) ListSurveys(ctx context.Context, programID *int64, status *models.SurveyStatus, offset, limit int) ([]*models.FeedbackSurvey, int64, error) {
	return s.surveyRepo.GetAll(ctx, programID, status, offset, limit)
}

// UpdateSurvey edits a survey. Closed surveys are immutable.
func (s *SurveyService) UpdateSurvey(ctx context.Context, id int64, req dto.UpdateSurveyRequest) (*models.FeedbackSurvey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey.Status == models.SurveyClosed {
		return nil, apperrors.ErrSurveyInvalidTransition
	}

	if req.ProgramID != nil {
		if _, err := s.programRepo.GetByID(ctx, *req.ProgramID); err != nil {
			return nil, err
		}
	}

	survey.Title = req.Title
	survey.Description = req.Description
	survey.ProgramID = req.ProgramID
	survey.StartsAt = req.StartsAt
	survey.EndsAt = req.EndsAt

	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// ChangeSurveyStatus moves a survey along DRAFT -> OPEN -> CLOSED. Reopening
// a closed survey or skipping a step is rejected.
func (s *SurveyService) ChangeSurveyStatus(ctx context.Context, id int64, status models.SurveyStatus) (*models.FeedbackSurvey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !validSurveyTransition(survey.Status, status) {
		return nil, apperrors.ErrSurveyInvalidTransition
	}

	if err := s.surveyRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	survey.Status = status

	s.logger.Info().Int64("surveyId", id).Str("status", string(status)).Msg("Survey status changed")
	return survey, nil
}

// DeleteSurvey removes a survey that is still in draft
func (s *SurveyService) DeleteSurvey(ctx context.Context, id int64) error {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if survey.Status != models.SurveyDraft {
		return apperrors.ErrSurveyInvalidTransition
	}
	return s.surveyRepo.Delete(ctx, id)
}

func validSurveyTransition(from, to models.SurveyStatus) bool {
	switch from {
	case models.SurveyDraft:
		return to == models.SurveyOpen
	case models.SurveyOpen:
		return to == models.SurveyClosed
	default:
		return false
	}
}

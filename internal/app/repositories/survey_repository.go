package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/sahyadri/portal/internal/pkg/dberrors"
)

// SurveyRepository handles database operations for the feedback_surveys table
type SurveyRepository struct {
	db *pgxpool.Pool
}

// NewSurveyRepository creates a new SurveyRepository
func NewSurveyRepository(db *pgxpool.Pool) *SurveyRepository {
	return &SurveyRepository{
		db: db,
	}
}

const surveyColumns = `s.id, s.title, s.description, s.program_id, s.status, s.starts_at, s.ends_at, s.created_at`

func scanSurvey(row pgx.Row) (*models.FeedbackSurvey, error) {
	survey := &models.FeedbackSurvey{}
	err := row.Scan(
		&survey.ID, &survey.Title, &survey.Description, &survey.ProgramID,
		&survey.Status, &survey.StartsAt, &survey.EndsAt, &survey.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("error scanning survey: %w", err)
	}
	return survey, nil
}

// Create inserts a new feedback survey and sets its ID
func (r *SurveyRepository) Create(ctx context.Context, survey *models.FeedbackSurvey) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO feedback_surveys (title, description, program_id, status, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		survey.Title, survey.Description, survey.ProgramID, survey.Status,
		survey.StartsAt, survey.EndsAt).
		Scan(&survey.ID, &survey.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error creating survey: %w", err)
	}

	return nil
}

// GetByID retrieves a feedback survey by ID
func (r *SurveyRepository) GetByID(ctx context.Context, id int64) (*models.FeedbackSurvey, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+surveyColumns+`
		FROM feedback_surveys s
		WHERE s.id = $1`, id)
	return scanSurvey(row)
}

// GetAll retrieves surveys with optional program and status filtering
func (r *SurveyRepository) GetAll(ctx context.Context, programID *int64, status *models.SurveyStatus, offset, limit int) ([]*models.FeedbackSurvey, int64, error) {
	whereClause := ``
	args := []interface{}{}
	if programID != nil {
		whereClause = `WHERE s.program_id = $1`
		args = append(args, *programID)
	}
	if status != nil {
		if whereClause == `` {
			whereClause = fmt.Sprintf(`WHERE s.status = $%d`, len(args)+1)
		} else {
			whereClause += fmt.Sprintf(` AND s.status = $%d`, len(args)+1)
		}
		args = append(args, *status)
	}

	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM feedback_surveys s `+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting surveys: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+surveyColumns+`
		FROM feedback_surveys s
		%s
		ORDER BY s.id DESC
		LIMIT $%d OFFSET $%d`, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing surveys: %w", err)
	}
	defer rows.Close()

	var surveys []*models.FeedbackSurvey
	for rows.Next() {
		survey, err := scanSurvey(rows)
		if err != nil {
			return nil, 0, err
		}
		surveys = append(surveys, survey)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating surveys: %w", err)
	}

	return surveys, total, nil
}

// Update modifies a survey's editable fields
func (r *SurveyRepository) Update(ctx context.Context, survey *models.FeedbackSurvey) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE feedback_surveys
		SET title = $1, description = $2, program_id = $3, starts_at = $4, ends_at = $5
		WHERE id = $6`,
		survey.Title, survey.Description, survey.ProgramID, survey.StartsAt, survey.EndsAt, survey.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error updating survey: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSurveyNotFound
	}
	return nil
}

// UpdateStatus moves a survey to a new lifecycle status
func (r *SurveyRepository) UpdateStatus(ctx context.Context, id int64, status models.SurveyStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE feedback_surveys
		SET status = $1
		WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating survey status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSurveyNotFound
	}
	return nil
}

// Delete removes a survey; only drafts should reach this point
func (r *SurveyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM feedback_surveys
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting survey: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSurveyNotFound
	}
	return nil
}

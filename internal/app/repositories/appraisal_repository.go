package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/sahyadri/portal/internal/pkg/dberrors"
)

// AppraisalRepository handles database operations for the appraisals table
type AppraisalRepository struct {
	db *pgxpool.Pool
}

// NewAppraisalRepository creates a new AppraisalRepository
func NewAppraisalRepository(db *pgxpool.Pool) *AppraisalRepository {
	return &AppraisalRepository{
		db: db,
	}
}

const appraisalColumns = `a.id, a.faculty_id, a.academic_year, a.status, a.self_score, a.remarks, a.created_at, a.updated_at`

func scanAppraisal(row pgx.Row) (*models.Appraisal, error) {
	appraisal := &models.Appraisal{}
	err := row.Scan(
		&appraisal.ID, &appraisal.FacultyID, &appraisal.AcademicYear, &appraisal.Status,
		&appraisal.SelfScore, &appraisal.Remarks, &appraisal.CreatedAt, &appraisal.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAppraisalNotFound
		}
		return nil, fmt.Errorf("error scanning appraisal: %w", err)
	}
	return appraisal, nil
}

// Create inserts a new draft appraisal and sets its ID
func (r *AppraisalRepository) Create(ctx context.Context, appraisal *models.Appraisal) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO appraisals (faculty_id, academic_year, status, self_score, remarks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		appraisal.FacultyID, appraisal.AcademicYear, appraisal.Status,
		appraisal.SelfScore, appraisal.Remarks).
		Scan(&appraisal.ID, &appraisal.CreatedAt, &appraisal.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error creating appraisal: %w", err)
	}

	return nil
}

// GetByID retrieves an appraisal by ID
func (r *AppraisalRepository) GetByID(ctx context.Context, id int64) (*models.Appraisal, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+appraisalColumns+`
		FROM appraisals a
		WHERE a.id = $1`, id)
	return scanAppraisal(row)
}

// GetAll retrieves appraisals with optional faculty and department filtering.
// Department filtering goes through the faculty's current department.
func (r *AppraisalRepository) GetAll(ctx context.Context, facultyID, departmentID *int64, offset, limit int) ([]*models.Appraisal, int64, error) {
	whereClause := ``
	args := []interface{}{}
	if facultyID != nil {
		whereClause = `WHERE a.faculty_id = $1`
		args = append(args, *facultyID)
	} else if departmentID != nil {
		whereClause = `JOIN faculties f ON f.id = a.faculty_id WHERE f.department_id = $1`
		args = append(args, *departmentID)
	}

	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appraisals a `+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting appraisals: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+appraisalColumns+`
		FROM appraisals a
		%s
		ORDER BY a.academic_year DESC, a.id DESC
		LIMIT $%d OFFSET $%d`, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing appraisals: %w", err)
	}
	defer rows.Close()

	var appraisals []*models.Appraisal
	for rows.Next() {
		appraisal, err := scanAppraisal(rows)
		if err != nil {
			return nil, 0, err
		}
		appraisals = append(appraisals, appraisal)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating appraisals: %w", err)
	}

	return appraisals, total, nil
}

// Update modifies the self-assessment fields of an appraisal
func (r *AppraisalRepository) Update(ctx context.Context, appraisal *models.Appraisal) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE appraisals
		SET self_score = $1, remarks = $2, updated_at = now()
		WHERE id = $3`,
		appraisal.SelfScore, appraisal.Remarks, appraisal.ID)
	if err != nil {
		return fmt.Errorf("error updating appraisal: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAppraisalNotFound
	}
	return nil
}

// UpdateStatus moves an appraisal to a new lifecycle status
func (r *AppraisalRepository) UpdateStatus(ctx context.Context, id int64, status models.AppraisalStatus, remarks *string) error {
	var cmdTag pgconn.CommandTag
	var err error
	if remarks != nil {
		cmdTag, err = r.db.Exec(ctx, `
			UPDATE appraisals
			SET status = $1, remarks = $2, updated_at = now()
			WHERE id = $3`, status, *remarks, id)
	} else {
		cmdTag, err = r.db.Exec(ctx, `
			UPDATE appraisals
			SET status = $1, updated_at = now()
			WHERE id = $2`, status, id)
	}
	if err != nil {
		return fmt.Errorf("error updating appraisal status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAppraisalNotFound
	}
	return nil
}

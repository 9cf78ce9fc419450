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

// FacultyRepository handles database operations for the faculties table
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

const facultyColumns = `id, first_name, last_name, official_email, password, department_id, designation, is_active, created_at, updated_at`

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	faculty := &models.Faculty{}
	err := row.Scan(
		&faculty.ID, &faculty.FirstName, &faculty.LastName, &faculty.OfficialEmail,
		&faculty.Password, &faculty.DepartmentID, &faculty.Designation,
		&faculty.IsActive, &faculty.CreatedAt, &faculty.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error scanning faculty: %w", err)
	}
	return faculty, nil
}

// Create inserts a new faculty member and sets its ID
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO faculties (first_name, last_name, official_email, password, department_id, designation, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		faculty.FirstName, faculty.LastName, faculty.OfficialEmail, faculty.Password,
		faculty.DepartmentID, faculty.Designation, faculty.IsActive).
		Scan(&faculty.ID, &faculty.CreatedAt, &faculty.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFacultyEmailExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating faculty: %w", err)
	}

	return nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+facultyColumns+`
		FROM faculties
		WHERE id = $1`, id)
	return scanFaculty(row)
}

// GetActiveByOfficialEmail retrieves an active faculty member by official email
func (r *FacultyRepository) GetActiveByOfficialEmail(ctx context.Context, email string) (*models.Faculty, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+facultyColumns+`
		FROM faculties
		WHERE official_email = $1 AND is_active = true`, email)
	return scanFaculty(row)
}

// GetAll retrieves faculty members with optional department filtering and pagination
func (r *FacultyRepository) GetAll(ctx context.Context, departmentID *int64, offset, limit int) ([]*models.Faculty, int64, error) {
	whereClause := ``
	args := []interface{}{}
	if departmentID != nil {
		whereClause = `WHERE department_id = $1`
		args = append(args, *departmentID)
	}

	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faculties `+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting faculties: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+facultyColumns+`
		FROM faculties
		%s
		ORDER BY last_name, first_name
		LIMIT $%d OFFSET $%d`, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing faculties: %w", err)
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		faculty, err := scanFaculty(rows)
		if err != nil {
			return nil, 0, err
		}
		faculties = append(faculties, faculty)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating faculties: %w", err)
	}

	return faculties, total, nil
}

// Update modifies a faculty member's profile fields
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE faculties
		SET first_name = $1, last_name = $2, official_email = $3, password = $4,
		    department_id = $5, designation = $6, is_active = $7, updated_at = now()
		WHERE id = $8`,
		faculty.FirstName, faculty.LastName, faculty.OfficialEmail, faculty.Password,
		faculty.DepartmentID, faculty.Designation, faculty.IsActive, faculty.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFacultyEmailExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// Deactivate clears is_active for a faculty member
func (r *FacultyRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE faculties
		SET is_active = false, updated_at = now()
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

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

// DepartmentRepository handles database operations for the departments table
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

const departmentColumns = `id, name, code, hod_faculty_id, is_active, created_at, updated_at`

func scanDepartment(row pgx.Row) (*models.Department, error) {
	department := &models.Department{}
	err := row.Scan(
		&department.ID, &department.Name, &department.Code, &department.HODFacultyID,
		&department.IsActive, &department.CreatedAt, &department.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error scanning department: %w", err)
	}
	return department, nil
}

// Create inserts a new department and sets its ID
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO departments (name, code, hod_faculty_id, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		department.Name, department.Code, department.HODFacultyID, department.IsActive).
		Scan(&department.ID, &department.CreatedAt, &department.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+departmentColumns+`
		FROM departments
		WHERE id = $1`, id)
	return scanDepartment(row)
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context, includeInactive bool) ([]*models.Department, error) {
	query := `
		SELECT ` + departmentColumns + `
		FROM departments`
	if !includeInactive {
		query += `
		WHERE is_active = true`
	}
	query += `
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}

// GetActiveByHODFacultyID retrieves every active department headed by the given faculty member
func (r *DepartmentRepository) GetActiveByHODFacultyID(ctx context.Context, facultyID int64) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+departmentColumns+`
		FROM departments
		WHERE hod_faculty_id = $1 AND is_active = true
		ORDER BY id`, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error querying departments by hod: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}

// Update modifies a department's fields including the HOD assignment
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE departments
		SET name = $1, code = $2, hod_faculty_id = $3, is_active = $4, updated_at = now()
		WHERE id = $5`,
		department.Name, department.Code, department.HODFacultyID, department.IsActive, department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error updating department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// Deactivate clears is_active for a department
func (r *DepartmentRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE departments
		SET is_active = false, updated_at = now()
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

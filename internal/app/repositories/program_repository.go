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

// ProgramRepository handles database operations for the programs table
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
	}
}

const programColumns = `p.id, p.name, p.code, p.level, p.department_id, p.duration_years, p.is_active, p.created_at, p.updated_at`

func scanProgram(row pgx.Row) (*models.Program, error) {
	program := &models.Program{}
	err := row.Scan(
		&program.ID, &program.Name, &program.Code, &program.Level, &program.DepartmentID,
		&program.DurationYears, &program.IsActive, &program.CreatedAt, &program.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error scanning program: %w", err)
	}
	return program, nil
}

// Create inserts a new program and sets its ID
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO programs (name, code, level, department_id, duration_years, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		program.Name, program.Code, program.Level, program.DepartmentID,
		program.DurationYears, program.IsActive).
		Scan(&program.ID, &program.CreatedAt, &program.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrProgramAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating program: %w", err)
	}

	return nil
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+programColumns+`
		FROM programs p
		WHERE p.id = $1`, id)
	return scanProgram(row)
}

// GetAll retrieves programs with optional department filtering and pagination
func (r *ProgramRepository) GetAll(ctx context.Context, departmentID *int64, offset, limit int) ([]*models.Program, int64, error) {
	whereClause := ``
	args := []interface{}{}
	if departmentID != nil {
		whereClause = `WHERE p.department_id = $1`
		args = append(args, *departmentID)
	}

	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM programs p `+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting programs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+programColumns+`
		FROM programs p
		%s
		ORDER BY p.name
		LIMIT $%d OFFSET $%d`, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing programs: %w", err)
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			return nil, 0, err
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating programs: %w", err)
	}

	return programs, total, nil
}

// CountActiveByDepartmentID counts the active programs attached to a department
func (r *ProgramRepository) CountActiveByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM programs
		WHERE department_id = $1 AND is_active = true`, departmentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active programs: %w", err)
	}
	return count, nil
}

// Update modifies a program's fields
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE programs
		SET name = $1, code = $2, level = $3, department_id = $4, duration_years = $5,
		    is_active = $6, updated_at = now()
		WHERE id = $7`,
		program.Name, program.Code, program.Level, program.DepartmentID,
		program.DurationYears, program.IsActive, program.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrProgramAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}
	return nil
}

// Deactivate clears is_active for a program
func (r *ProgramRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE programs
		SET is_active = false, updated_at = now()
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}
	return nil
}

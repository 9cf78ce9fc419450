package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
)

// DepartmentStore defines the department persistence operations used by the service
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context, includeInactive bool) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Deactivate(ctx context.Context, id int64) error
}

// ActiveProgramCounter counts a department's active programs
type ActiveProgramCounter interface {
	CountActiveByDepartmentID(ctx context.Context, departmentID int64) (int64, error)
}

// FacultyLookup checks faculty existence for HOD assignment
type FacultyLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
}

// DepartmentService manages departments and HOD assignments
type DepartmentService struct {
	departmentRepo DepartmentStore
	programRepo    ActiveProgramCounter
	facultyRepo    FacultyLookup
	logger         zerolog.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo DepartmentStore, programRepo ActiveProgramCounter, facultyRepo FacultyLookup, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		programRepo:    programRepo,
		facultyRepo:    facultyRepo,
		logger:         logger.With().Str("service", "department").Logger(),
	}
}

// CreateDepartment creates a department, validating the HOD pointer when set
func (s *DepartmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	if err := s.checkHOD(ctx, req.HODFacultyID); err != nil {
		return nil, err
	}

	department := &models.Department{
		Name:         req.Name,
		Code:         req.Code,
		HODFacultyID: req.HODFacultyID,
		IsActive:     true,
	}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("departmentId", department.ID).Str("code", department.Code).Msg("Department created")
	return department, nil
}

// GetDepartment retrieves a department by ID
func (s *DepartmentService) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// ListDepartments lists departments, optionally including inactive ones
func (s *DepartmentService) ListDepartments(ctx context.Context, includeInactive bool) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx, includeInactive)
}

// UpdateDepartment modifies a department. Changing hodFacultyId here is the
// authoritative HOD assignment; role resolution picks it up lazily.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkHOD(ctx, req.HODFacultyID); err != nil {
		return nil, err
	}

	department.Name = req.Name
	department.Code = req.Code
	department.HODFacultyID = req.HODFacultyID
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// DeactivateDepartment soft-deletes a department. Rejected while the
// department still offers active programs, leaving it untouched.
func (s *DepartmentService) DeactivateDepartment(ctx context.Context, id int64) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.programRepo.CountActiveByDepartmentID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrDepartmentHasActivePrograms
	}

	if err := s.departmentRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("departmentId", id).Msg("Department deactivated")
	return nil
}

func (s *DepartmentService) checkHOD(ctx context.Context, facultyID *int64) error {
	if facultyID == nil {
		return nil
	}
	if _, err := s.facultyRepo.GetByID(ctx, *facultyID); err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return apperrors.ErrFacultyNotFound
		}
		return err
	}
	return nil
}

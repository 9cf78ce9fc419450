package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
)

// ProgramStore defines the program persistence operations used by the service
type ProgramStore interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	GetAll(ctx context.Context, departmentID *int64, offset, limit int) ([]*models.Program, int64, error)
	Update(ctx context.Context, program *models.Program) error
	Deactivate(ctx context.Context, id int64) error
}

// ProgramService manages degree programs
type ProgramService struct {
	programRepo    ProgramStore
	departmentRepo DepartmentLookup
	logger         zerolog.Logger
}

// NewProgramService creates a new ProgramService
func NewProgramService(programRepo ProgramStore, departmentRepo DepartmentLookup, logger zerolog.Logger) *ProgramService {
	return &ProgramService{
		programRepo:    programRepo,
		departmentRepo: departmentRepo,
		logger:         logger.With().Str("service", "program").Logger(),
	}
}

// CreateProgram creates a program under an existing department
func (s *ProgramService) CreateProgram(ctx context.Context, req dto.CreateProgramRequest) (*models.Program, error) {
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	program := &models.Program{
		DepartmentID:  req.DepartmentID,
		Name:          req.Name,
		Code:          req.Code,
		Level:         req.Level,
		DurationYears: req.DurationYears,
		IsActive:      true,
	}
	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("programId", program.ID).Str("code", program.Code).Msg("Program created")
	return program, nil
}

// GetProgram retrieves a program by ID
func (s *ProgramService) GetProgram(ctx context.Context, id int64) (*models.Program, error) {
	return s.programRepo.GetByID(ctx, id)
}

// ListPrograms lists programs with optional department filtering
func (s *ProgramService) ListPrograms(ctx context.Context, departmentID *int64, offset, limit int) ([]*models.Program, int64, error) {
	return s.programRepo.GetAll(ctx, departmentID, offset, limit)
}

// UpdateProgram modifies a program
func (s *ProgramService) UpdateProgram(ctx context.Context, id int64, req dto.UpdateProgramRequest) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != program.DepartmentID {
		if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
			return nil, err
		}
	}

	program.DepartmentID = req.DepartmentID
	program.Name = req.Name
	program.Code = req.Code
	program.Level = req.Level
	program.DurationYears = req.DurationYears
	if req.IsActive != nil {
		program.IsActive = *req.IsActive
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// DeactivateProgram soft-deletes a program
func (s *ProgramService) DeactivateProgram(ctx context.Context, id int64) error {
	if err := s.programRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("programId", id).Msg("Program deactivated")
	return nil
}

package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/auth"
)

// FacultyStore defines the faculty persistence operations used by the service
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAll(ctx context.Context, departmentID *int64, offset, limit int) ([]*models.Faculty, int64, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Deactivate(ctx context.Context, id int64) error
}

// DepartmentLookup checks department existence for faculty placement
type DepartmentLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// FacultyService manages faculty profiles and credentials
type FacultyService struct {
	facultyRepo    FacultyStore
	departmentRepo DepartmentLookup
	logger         zerolog.Logger
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(facultyRepo FacultyStore, departmentRepo DepartmentLookup, logger zerolog.Logger) *FacultyService {
	return &FacultyService{
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		logger:         logger.With().Str("service", "faculty").Logger(),
	}
}

// CreateFaculty creates a faculty profile with a bcrypt-hashed password
func (s *FacultyService) CreateFaculty(ctx context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error) {
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		OfficialEmail: req.OfficialEmail,
		Password:      hashed,
		DepartmentID:  req.DepartmentID,
		Designation:   req.Designation,
		IsActive:      true,
	}
	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("facultyId", faculty.ID).Msg("Faculty created")
	return faculty, nil
}

// GetFaculty retrieves a faculty member by ID
func (s *FacultyService) GetFaculty(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

// ListFaculties lists faculty members with optional department filtering
func (s *FacultyService) ListFaculties(ctx context.Context, departmentID *int64, offset, limit int) ([]*models.Faculty, int64, error) {
	return s.facultyRepo.GetAll(ctx, departmentID, offset, limit)
}

// UpdateFaculty modifies a faculty profile. A non-empty password replaces the
// stored hash.
func (s *FacultyService) UpdateFaculty(ctx context.Context, id int64, req dto.UpdateFacultyRequest) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	faculty.FirstName = req.FirstName
	faculty.LastName = req.LastName
	faculty.OfficialEmail = req.OfficialEmail
	faculty.DepartmentID = req.DepartmentID
	faculty.Designation = req.Designation

	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		faculty.Password = hashed
	}

	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

// DeactivateFaculty soft-deletes a faculty member
func (s *FacultyService) DeactivateFaculty(ctx context.Context, id int64) error {
	if err := s.facultyRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("facultyId", id).Msg("Faculty deactivated")
	return nil
}

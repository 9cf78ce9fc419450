package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
)

// RoleAssignmentStore defines the role persistence operations used by the resolver
type RoleAssignmentStore interface {
	GetActiveAssignments(ctx context.Context, userID int64) ([]models.RoleAssignment, error)
	SyncImplicitHODRoles(ctx context.Context, userID int64, departmentIDs []int64) error
}

// HODDepartmentStore looks up the departments a faculty member heads
type HODDepartmentStore interface {
	GetActiveByHODFacultyID(ctx context.Context, facultyID int64) ([]*models.Department, error)
}

// RoleService resolves the effective roles of a principal. Explicit grants in
// user_roles are merged with headship implied by departments.hod_faculty_id,
// which stays the source of truth for who heads a department.
type RoleService struct {
	roleRepo       RoleAssignmentStore
	departmentRepo HODDepartmentStore
	logger         zerolog.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo RoleAssignmentStore, departmentRepo HODDepartmentStore, logger zerolog.Logger) *RoleService {
	return &RoleService{
		roleRepo:       roleRepo,
		departmentRepo: departmentRepo,
		logger:         logger.With().Str("service", "role").Logger(),
	}
}

// ResolveRoles returns the ordered effective roles for a user: the active
// explicit grants first, then one hod tuple per active department headed by
// the linked faculty member that the grants do not cover yet. Discovered
// headship is written back so the next resolution finds it persisted; a
// write-back failure is logged and swallowed because the in-memory result is
// already complete.
func (s *RoleService) ResolveRoles(ctx context.Context, userID int64, facultyID *int64) ([]models.RoleAssignment, error) {
	assignments, err := s.roleRepo.GetActiveAssignments(ctx, userID)
	if err != nil {
		return nil, err
	}

	if facultyID == nil {
		return assignments, nil
	}

	headed, err := s.departmentRepo.GetActiveByHODFacultyID(ctx, *facultyID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userId", userID).Msg("Headship lookup failed, returning explicit grants only")
		return assignments, nil
	}

	var missingDeptIDs []int64
	for _, dept := range headed {
		if hasHODAssignment(assignments, dept.ID) {
			continue
		}
		deptID := dept.ID
		deptName := dept.Name
		assignments = append(assignments, models.RoleAssignment{
			Role:           models.RoleHOD,
			DepartmentID:   &deptID,
			DepartmentName: &deptName,
		})
		missingDeptIDs = append(missingDeptIDs, dept.ID)
	}

	if len(missingDeptIDs) > 0 {
		if err := s.roleRepo.SyncImplicitHODRoles(ctx, userID, missingDeptIDs); err != nil {
			s.logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to persist implicit hod roles")
		}
	}

	return assignments, nil
}

// ResolveImplicitHOD returns the headship tuples for a faculty member with no
// linked user account. Nothing is written back because user_roles rows need a
// user id.
func (s *RoleService) ResolveImplicitHOD(ctx context.Context, facultyID int64) ([]models.RoleAssignment, error) {
	headed, err := s.departmentRepo.GetActiveByHODFacultyID(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	assignments := make([]models.RoleAssignment, 0, len(headed))
	for _, dept := range headed {
		deptID := dept.ID
		deptName := dept.Name
		assignments = append(assignments, models.RoleAssignment{
			Role:           models.RoleHOD,
			DepartmentID:   &deptID,
			DepartmentName: &deptName,
		})
	}
	return assignments, nil
}

func hasHODAssignment(assignments []models.RoleAssignment, departmentID int64) bool {
	for _, a := range assignments {
		if a.Role == models.RoleHOD && a.DepartmentID != nil && *a.DepartmentID == departmentID {
			return true
		}
	}
	return false
}

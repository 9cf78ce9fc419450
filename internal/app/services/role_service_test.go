package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoleStore struct {
	assignments    []models.RoleAssignment
	assignmentsErr error
	syncedUserID   int64
	syncedDeptIDs  []int64
	syncCalls      int
	syncErr        error
}

func (s *stubRoleStore) GetActiveAssignments(_ context.Context, _ int64) ([]models.RoleAssignment, error) {
	return s.assignments, s.assignmentsErr
}

func (s *stubRoleStore) SyncImplicitHODRoles(_ context.Context, userID int64, departmentIDs []int64) error {
	s.syncCalls++
	s.syncedUserID = userID
	s.syncedDeptIDs = departmentIDs
	return s.syncErr
}

type stubHODDepartmentStore struct {
	departments []*models.Department
	err         error
}

func (s *stubHODDepartmentStore) GetActiveByHODFacultyID(_ context.Context, _ int64) ([]*models.Department, error) {
	return s.departments, s.err
}

func ptrInt64(v int64) *int64 { return &v }

func ptrString(v string) *string { return &v }

func TestResolveRoles_NoFacultyLink(t *testing.T) {
	roleStore := &stubRoleStore{
		assignments: []models.RoleAssignment{{Role: models.RoleAdmin}},
	}
	svc := NewRoleService(roleStore, &stubHODDepartmentStore{}, zerolog.Nop())

	roles, err := svc.ResolveRoles(context.Background(), 5, nil)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, models.RoleAdmin, roles[0].Role)
	assert.Zero(t, roleStore.syncCalls)
}

func TestResolveRoles_DiscoversHeadship(t *testing.T) {
	roleStore := &stubRoleStore{
		assignments: []models.RoleAssignment{{Role: models.RoleFaculty}},
	}
	deptStore := &stubHODDepartmentStore{
		departments: []*models.Department{
			{ID: 3, Name: "Computer Science and Engineering"},
		},
	}
	svc := NewRoleService(roleStore, deptStore, zerolog.Nop())

	roles, err := svc.ResolveRoles(context.Background(), 5, ptrInt64(9))
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, models.RoleFaculty, roles[0].Role)
	assert.Equal(t, models.RoleHOD, roles[1].Role)
	require.NotNil(t, roles[1].DepartmentID)
	assert.Equal(t, int64(3), *roles[1].DepartmentID)
	require.NotNil(t, roles[1].DepartmentName)
	assert.Equal(t, "Computer Science and Engineering", *roles[1].DepartmentName)

	assert.Equal(t, 1, roleStore.syncCalls)
	assert.Equal(t, int64(5), roleStore.syncedUserID)
	assert.Equal(t, []int64{3}, roleStore.syncedDeptIDs)
}

func TestResolveRoles_IdempotentWhenAlreadyPersisted(t *testing.T) {
	roleStore := &stubRoleStore{
		assignments: []models.RoleAssignment{
			{Role: models.RoleFaculty},
			{Role: models.RoleHOD, DepartmentID: ptrInt64(3), DepartmentName: ptrString("CSE")},
		},
	}
	deptStore := &stubHODDepartmentStore{
		departments: []*models.Department{{ID: 3, Name: "CSE"}},
	}
	svc := NewRoleService(roleStore, deptStore, zerolog.Nop())

	roles, err := svc.ResolveRoles(context.Background(), 5, ptrInt64(9))
	require.NoError(t, err)
	assert.Len(t, roles, 2)
	assert.Zero(t, roleStore.syncCalls, "persisted headship must not be re-synced")
}

func TestResolveRoles_HeadOfMultipleDepartments(t *testing.T) {
	roleStore := &stubRoleStore{}
	deptStore := &stubHODDepartmentStore{
		departments: []*models.Department{
			{ID: 3, Name: "CSE"},
			{ID: 4, Name: "MCA"},
		},
	}
	svc := NewRoleService(roleStore, deptStore, zerolog.Nop())

	roles, err := svc.ResolveRoles(context.Background(), 5, ptrInt64(9))
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, int64(3), *roles[0].DepartmentID)
	assert.Equal(t, int64(4), *roles[1].DepartmentID)
	assert.Equal(t, []int64{3, 4}, roleStore.syncedDeptIDs)
}

func TestResolveRoles_SyncFailureIsSwallowed(t *testing.T) {
	roleStore := &stubRoleStore{syncErr: errors.New("connection reset")}
	deptStore := &stubHODDepartmentStore{
		departments: []*models.Department{{ID: 3, Name: "CSE"}},
	}
	svc := NewRoleService(roleStore, deptStore, zerolog.Nop())

	roles, err := svc.ResolveRoles(context.Background(), 5, ptrInt64(9))
	require.NoError(t, err, "write-back failure must not fail resolution")
	require.Len(t, roles, 1)
	assert.Equal(t, models.RoleHOD, roles[0].Role)
}

func TestResolveRoles_HeadshipLookupFailureReturnsExplicitGrants(t *testing.T) {
	roleStore := &stubRoleStore{
		assignments: []models.RoleAssignment{{Role: models.RoleFaculty}},
	}
	deptStore := &stubHODDepartmentStore{err: errors.New("timeout")}
	svc := NewRoleService(roleStore, deptStore, zerolog.Nop())

	roles, err := svc.ResolveRoles(context.Background(), 5, ptrInt64(9))
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestResolveImplicitHOD(t *testing.T) {
	deptStore := &stubHODDepartmentStore{
		departments: []*models.Department{{ID: 8, Name: "ECE"}},
	}
	svc := NewRoleService(&stubRoleStore{}, deptStore, zerolog.Nop())

	roles, err := svc.ResolveImplicitHOD(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, models.RoleHOD, roles[0].Role)
	assert.Equal(t, int64(8), *roles[0].DepartmentID)
}

package repositories

import (
	"testing"

	"github.com/sahyadri/portal/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRoleGrants(t *testing.T) {
	t.Run("hod grant ensures the faculty base role first", func(t *testing.T) {
		departmentID := int64(3)
		grants := planRoleGrants(models.RoleHOD, &departmentID)

		require.Len(t, grants, 2)
		assert.Equal(t, models.RoleFaculty, grants[0].role)
		assert.Nil(t, grants[0].departmentID, "base role is unscoped")
		assert.Equal(t, models.RoleHOD, grants[1].role)
		require.NotNil(t, grants[1].departmentID)
		assert.Equal(t, int64(3), *grants[1].departmentID)
	})

	t.Run("plain grant is a single row", func(t *testing.T) {
		grants := planRoleGrants(models.RoleAdmin, nil)

		require.Len(t, grants, 1)
		assert.Equal(t, models.RoleAdmin, grants[0].role)
		assert.Nil(t, grants[0].departmentID)
	})

	t.Run("faculty grant does not double the base role", func(t *testing.T) {
		grants := planRoleGrants(models.RoleFaculty, nil)
		require.Len(t, grants, 1)
	})
}

func TestPlanHODSync(t *testing.T) {
	t.Run("base role precedes every headship row", func(t *testing.T) {
		grants := planHODSync([]int64{3, 4})

		require.Len(t, grants, 3)
		assert.Equal(t, models.RoleFaculty, grants[0].role)
		assert.Nil(t, grants[0].departmentID)
		assert.Equal(t, models.RoleHOD, grants[1].role)
		assert.Equal(t, int64(3), *grants[1].departmentID)
		assert.Equal(t, models.RoleHOD, grants[2].role)
		assert.Equal(t, int64(4), *grants[2].departmentID)
	})

	t.Run("department pointers are independent", func(t *testing.T) {
		grants := planHODSync([]int64{3, 4})
		assert.NotSame(t, grants[1].departmentID, grants[2].departmentID)
		assert.NotEqual(t, *grants[1].departmentID, *grants[2].departmentID)
	})
}

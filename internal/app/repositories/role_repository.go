package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sahyadri/portal/internal/app/models"
)

// RoleRepository handles database operations for the user_roles table
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
	}
}

// GetActiveAssignments retrieves the explicitly granted active roles for a user,
// joined with the department name where a department scope exists
func (r *RoleRepository) GetActiveAssignments(ctx context.Context, userID int64) ([]models.RoleAssignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ur.role, ur.department_id, d.name
		FROM user_roles ur
		LEFT JOIN departments d ON d.id = ur.department_id
		WHERE ur.user_id = $1 AND ur.is_active = true
		ORDER BY ur.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying user roles: %w", err)
	}
	defer rows.Close()

	var assignments []models.RoleAssignment
	for rows.Next() {
		var assignment models.RoleAssignment
		if err := rows.Scan(&assignment.Role, &assignment.DepartmentID, &assignment.DepartmentName); err != nil {
			return nil, fmt.Errorf("error scanning role assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role assignments: %w", err)
	}

	return assignments, nil
}

// GetActiveRoleNames retrieves the distinct active role names for a user
func (r *RoleRepository) GetActiveRoleNames(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT role
		FROM user_roles
		WHERE user_id = $1 AND is_active = true`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying role names: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("error scanning role name: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role names: %w", err)
	}

	return roles, nil
}

// HasActiveRole checks whether an active grant exists for the given role,
// optionally scoped to a department
func (r *RoleRepository) HasActiveRole(ctx context.Context, userID int64, role string, departmentID *int64) (bool, error) {
	var exists bool
	var err error
	if departmentID != nil {
		err = r.db.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM user_roles
				WHERE user_id = $1 AND role = $2 AND department_id = $3 AND is_active = true)`,
			userID, role, *departmentID).Scan(&exists)
	} else {
		err = r.db.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM user_roles
				WHERE user_id = $1 AND role = $2 AND is_active = true)`,
			userID, role).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("error checking role grant: %w", err)
	}
	return exists, nil
}

// roleGrant is one row a grant operation must ensure exists.
type roleGrant struct {
	role         string
	departmentID *int64
}

// planRoleGrants expands a requested grant into the ordered rows to ensure.
// A hod grant is preceded by the unscoped faculty base role so the explicit
// grants stay self-consistent.
func planRoleGrants(role string, departmentID *int64) []roleGrant {
	if role == models.RoleHOD {
		return []roleGrant{
			{role: models.RoleFaculty},
			{role: models.RoleHOD, departmentID: departmentID},
		}
	}
	return []roleGrant{{role: role, departmentID: departmentID}}
}

// planHODSync expands discovered headships into the ordered rows to ensure:
// the faculty base role first, then one hod row per headed department.
func planHODSync(departmentIDs []int64) []roleGrant {
	grants := make([]roleGrant, 0, len(departmentIDs)+1)
	grants = append(grants, roleGrant{role: models.RoleFaculty})
	for _, departmentID := range departmentIDs {
		deptID := departmentID
		grants = append(grants, roleGrant{role: models.RoleHOD, departmentID: &deptID})
	}
	return grants
}

// AssignRole grants a role inside a single transaction, ensuring every row
// the grant implies in plan order.
func (r *RoleRepository) AssignRole(ctx context.Context, userID int64, role string, departmentID *int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning role assignment: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, grant := range planRoleGrants(role, departmentID) {
		if err := ensureRoleTx(ctx, tx, userID, grant.role, grant.departmentID); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing role assignment: %w", err)
	}
	return nil
}

// SyncImplicitHODRoles persists lazily discovered headship roles. The faculty
// base role and one hod row per headed department are written idempotently in
// a single transaction.
func (r *RoleRepository) SyncImplicitHODRoles(ctx context.Context, userID int64, departmentIDs []int64) error {
	if len(departmentIDs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning role sync: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, grant := range planHODSync(departmentIDs) {
		if err := ensureRoleTx(ctx, tx, userID, grant.role, grant.departmentID); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing role sync: %w", err)
	}
	return nil
}

// ensureRoleTx inserts a role grant if no active one exists yet. Reruns are
// no-ops, so the sync stays idempotent.
func ensureRoleTx(ctx context.Context, tx pgx.Tx, userID int64, role string, departmentID *int64) error {
	var exists bool
	var err error
	if departmentID != nil {
		err = tx.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM user_roles
				WHERE user_id = $1 AND role = $2 AND department_id = $3 AND is_active = true)`,
			userID, role, *departmentID).Scan(&exists)
	} else {
		err = tx.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM user_roles
				WHERE user_id = $1 AND role = $2 AND department_id IS NULL AND is_active = true)`,
			userID, role).Scan(&exists)
	}
	if err != nil {
		return fmt.Errorf("error checking existing role grant: %w", err)
	}
	if exists {
		return nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_roles (user_id, role, department_id, is_active)
		VALUES ($1, $2, $3, true)`,
		userID, role, departmentID)
	if err != nil {
		return fmt.Errorf("error inserting role grant: %w", err)
	}
	return nil
}

// RevokeRole deactivates an existing role grant
func (r *RoleRepository) RevokeRole(ctx context.Context, userID int64, role string, departmentID *int64) error {
	var err error
	if departmentID != nil {
		_, err = r.db.Exec(ctx, `
			UPDATE user_roles
			SET is_active = false, updated_at = now()
			WHERE user_id = $1 AND role = $2 AND department_id = $3`,
			userID, role, *departmentID)
	} else {
		_, err = r.db.Exec(ctx, `
			UPDATE user_roles
			SET is_active = false, updated_at = now()
			WHERE user_id = $1 AND role = $2`,
			userID, role)
	}
	if err != nil {
		return fmt.Errorf("error revoking role: %w", err)
	}
	return nil
}

package dto

import "github.com/sahyadri/portal/internal/app/models"

// LoginRequest represents login credentials. Username may be a plain
// username, a users-table email, or a faculty official email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RoleInfo is one resolved role tuple in an auth response
type RoleInfo struct {
	Role           string  `json:"role"`
	DepartmentID   *int64  `json:"departmentId,omitempty"`
	DepartmentName *string `json:"departmentName,omitempty"`
}

// FacultyInfo is the faculty profile slice embedded in auth responses
type FacultyInfo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	OfficialEmail string `json:"officialEmail"`
	DepartmentID  *int64 `json:"departmentId,omitempty"`
	Designation   string `json:"designation,omitempty"`
}

// AuthUser is the user payload in login/verify responses
type AuthUser struct {
	ID          int64        `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email,omitempty"`
	UserType    string       `json:"userType"`
	Roles       []RoleInfo   `json:"roles"`
	FacultyInfo *FacultyInfo `json:"facultyInfo,omitempty"`
}

// LoginResponse is the login/verify payload
type LoginResponse struct {
	Token     string   `json:"token,omitempty"`
	ExpiresIn int      `json:"expiresIn,omitempty"`
	User      AuthUser `json:"user"`
}

// CreateUserRequest represents the admin-only user creation payload
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	UserType  string `json:"userType" binding:"required,oneof=admin faculty student"`
	FacultyID *int64 `json:"facultyId,omitempty"`
}

// AssignRoleRequest represents the admin-only role assignment payload
type AssignRoleRequest struct {
	UserID       int64  `json:"userId" binding:"required,min=1"`
	Role         string `json:"role" binding:"required"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// RevokeRoleRequest represents the admin-only role revocation payload
type RevokeRoleRequest struct {
	UserID       int64  `json:"userId" binding:"required,min=1"`
	Role         string `json:"role" binding:"required"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// RolesFromAssignments converts resolved role assignments into the DTO shape
func RolesFromAssignments(assignments []models.RoleAssignment) []RoleInfo {
	roles := make([]RoleInfo, 0, len(assignments))
	for _, a := range assignments {
		roles = append(roles, RoleInfo{
			Role:           a.Role,
			DepartmentID:   a.DepartmentID,
			DepartmentName: a.DepartmentName,
		})
	}
	return roles
}

// FacultyInfoFromModel converts a faculty row into the auth payload slice
func FacultyInfoFromModel(f *models.Faculty) *FacultyInfo {
	if f == nil {
		return nil
	}
	return &FacultyInfo{
		ID:            f.ID,
		Name:          f.FullName(),
		OfficialEmail: f.OfficialEmail,
		DepartmentID:  f.DepartmentID,
		Designation:   f.Designation,
	}
}

package models

import "time"

// User defines the user model based on the 'users' table. Accounts are never
// hard-deleted; deactivation clears is_active.
type User struct {
	ID          int64      `json:"id" db:"id"`
	Username    string     `json:"username" db:"username"`
	Email       string     `json:"email" db:"email"`
	Password    string     `json:"-" db:"password"`
	UserType    UserType   `json:"userType" db:"user_type"`
	FacultyID   *int64     `json:"facultyId,omitempty" db:"faculty_id"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// RoleAssignment is one effective role grant for a user, optionally scoped
// to a department.
type RoleAssignment struct {
	Role           string  `json:"role"`
	DepartmentID   *int64  `json:"departmentId,omitempty"`
	DepartmentName *string `json:"departmentName,omitempty"`
}

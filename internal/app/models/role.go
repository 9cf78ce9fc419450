package models

import "time"

// UserRole is one explicit role grant row from the user_roles table.
type UserRole struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	Role         string    `json:"role" db:"role"`
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

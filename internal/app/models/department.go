package models

import "time"

// Department represents an academic department. HODFacultyID is the source
// of truth for who heads the department; user_roles is reconciled to it
// lazily at login/verify time.
type Department struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Code         string    `json:"code" db:"code"`
	HODFacultyID *int64    `json:"hodFacultyId,omitempty" db:"hod_faculty_id"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

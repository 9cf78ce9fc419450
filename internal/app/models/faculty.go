package models

import "time"

// Faculty is the profile and credential store for teaching staff, keyed
// independently of the users table. Faculties can authenticate directly by
// official email without a users row.
type Faculty struct {
	ID            int64     `json:"id" db:"id"`
	FirstName     string    `json:"firstName" db:"first_name"`
	LastName      string    `json:"lastName" db:"last_name"`
	OfficialEmail string    `json:"officialEmail" db:"official_email"`
	Password      string    `json:"-" db:"password"`
	DepartmentID  *int64    `json:"departmentId,omitempty" db:"department_id"`
	Designation   string    `json:"designation" db:"designation"`
	IsActive      bool      `json:"isActive" db:"is_active"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// FullName returns the display name used in token claims.
func (f *Faculty) FullName() string {
	if f.LastName == "" {
		return f.FirstName
	}
	return f.FirstName + " " + f.LastName
}

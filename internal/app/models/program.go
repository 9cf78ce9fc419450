package models

import "time"

// Program represents a degree program offered by a department
type Program struct {
	ID            int64     `json:"id" db:"id"`
	DepartmentID  int64     `json:"departmentId" db:"department_id"`
	Name          string    `json:"name" db:"name"`
	Code          string    `json:"code" db:"code"`
	Level         string    `json:"level" db:"level"`
	DurationYears int       `json:"durationYears" db:"duration_years"`
	IsActive      bool      `json:"isActive" db:"is_active"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	Department *Department `json:"department,omitempty"`
}

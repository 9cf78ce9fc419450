package models

import "time"

// Appraisal is a faculty self-appraisal record for one academic year.
type Appraisal struct {
	ID           int64           `json:"id" db:"id"`
	FacultyID    int64           `json:"facultyId" db:"faculty_id"`
	AcademicYear string          `json:"academicYear" db:"academic_year"`
	Status       AppraisalStatus `json:"status" db:"status"`
	SelfScore    *int            `json:"selfScore,omitempty" db:"self_score"`
	Remarks      *string         `json:"remarks,omitempty" db:"remarks"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`

	Faculty *Faculty `json:"faculty,omitempty"`
}

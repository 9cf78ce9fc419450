package models

import "time"

// FeedbackSurvey is a student feedback survey, optionally scoped to a program.
type FeedbackSurvey struct {
	ID          int64        `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	ProgramID   *int64       `json:"programId,omitempty" db:"program_id"`
	Status      SurveyStatus `json:"status" db:"status"`
	StartsAt    *time.Time   `json:"startsAt,omitempty" db:"starts_at"`
	EndsAt      *time.Time   `json:"endsAt,omitempty" db:"ends_at"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`

	Program *Program `json:"program,omitempty"`
}

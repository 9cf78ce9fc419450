package dto

import "time"

// CreateSurveyRequest represents feedback survey creation data
type CreateSurveyRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ProgramID   *int64     `json:"programId,omitempty"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}

// UpdateSurveyRequest represents feedback survey update data
type UpdateSurveyRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ProgramID   *int64     `json:"programId,omitempty"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}

// SurveyStatusRequest moves a survey between DRAFT/OPEN/CLOSED
type SurveyStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT OPEN CLOSED"`
}

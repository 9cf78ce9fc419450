package dto

// CreateProgramRequest represents program creation data
type CreateProgramRequest struct {
	DepartmentID  int64  `json:"departmentId" binding:"required,min=1"`
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code" binding:"required"`
	Level         string `json:"level" binding:"required,oneof=UG PG PHD DIPLOMA"`
	DurationYears int    `json:"durationYears" binding:"required,min=1,max=10"`
}

// UpdateProgramRequest represents program update data
type UpdateProgramRequest struct {
	DepartmentID  int64  `json:"departmentId" binding:"required,min=1"`
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code" binding:"required"`
	Level         string `json:"level" binding:"required,oneof=UG PG PHD DIPLOMA"`
	DurationYears int    `json:"durationYears" binding:"required,min=1,max=10"`
	IsActive      *bool  `json:"isActive,omitempty"`
}

package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	HODFacultyID *int64 `json:"hodFacultyId,omitempty"`
}

// UpdateDepartmentRequest represents department update data. A null
// hodFacultyId clears the HOD pointer.
type UpdateDepartmentRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	HODFacultyID *int64 `json:"hodFacultyId,omitempty"`
}

package dto

// CreateFacultyRequest represents faculty profile creation data
type CreateFacultyRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName"`
	OfficialEmail string `json:"officialEmail" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	DepartmentID  *int64 `json:"departmentId,omitempty"`
	Designation   string `json:"designation"`
}

// UpdateFacultyRequest represents faculty profile update data. Password is
// optional; when present it replaces the stored hash.
type UpdateFacultyRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName"`
	OfficialEmail string `json:"officialEmail" binding:"required,email"`
	Password      string `json:"password,omitempty" binding:"omitempty,min=8"`
	DepartmentID  *int64 `json:"departmentId,omitempty"`
	Designation   string `json:"designation"`
}

package dto

// CreateAppraisalRequest opens a draft appraisal for a faculty member
type CreateAppraisalRequest struct {
	FacultyID    int64  `json:"facultyId" binding:"required,min=1"`
	AcademicYear string `json:"academicYear" binding:"required"`
}

// UpdateAppraisalRequest edits a draft appraisal
type UpdateAppraisalRequest struct {
	SelfScore *int    `json:"selfScore,omitempty" binding:"omitempty,min=0,max=100"`
	Remarks   *string `json:"remarks,omitempty"`
}

// ReviewAppraisalRequest records the reviewer's verdict
type ReviewAppraisalRequest struct {
	Remarks *string `json:"remarks,omitempty"`
}

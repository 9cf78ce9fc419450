package models

import "time"

// FileResource identifies the kind of record a stored file belongs to
type FileResource string

const (
	FileResourceFaculty   FileResource = "FACULTY"
	FileResourceAppraisal FileResource = "APPRAISAL"
	FileResourceSurvey    FileResource = "SURVEY"
	FileResourceGeneral   FileResource = "GENERAL"
)

// File represents an uploaded file in the system
type File struct {
	ID           int64        `json:"id" db:"id"`
	FileName     string       `json:"fileName" db:"file_name"`
	FileURL      string       `json:"fileUrl" db:"file_url"`
	FileSize     int64        `json:"fileSize" db:"file_size"`
	FileType     string       `json:"fileType" db:"file_type"` // MIME type
	ResourceType FileResource `json:"resourceType" db:"resource_type"`
	ResourceID   *int64       `json:"resourceId,omitempty" db:"resource_id"`
	UploadedBy   int64        `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
}

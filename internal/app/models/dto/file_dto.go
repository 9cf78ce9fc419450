package dto

import (
	"time"

	"github.com/sahyadri/portal/internal/app/models"
)

// FileResponse is the API shape of an uploaded file
type FileResponse struct {
	ID           int64     `json:"id"`
	FileName     string    `json:"fileName"`
	FileURL      string    `json:"fileUrl"`
	FileSize     int64     `json:"fileSize"`
	FileType     string    `json:"fileType"`
	ResourceType string    `json:"resourceType"`
	ResourceID   *int64    `json:"resourceId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromFile converts a models.File to a FileResponse
func FromFile(f *models.File) FileResponse {
	if f == nil {
		return FileResponse{}
	}
	return FileResponse{
		ID:           f.ID,
		FileName:     f.FileName,
		FileURL:      f.FileURL,
		FileSize:     f.FileSize,
		FileType:     f.FileType,
		ResourceType: string(f.ResourceType),
		ResourceID:   f.ResourceID,
		CreatedAt:    f.CreatedAt,
	}
}

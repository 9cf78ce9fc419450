package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/pkg/filestorage"
)

// FileStore defines the file metadata persistence operations used by the service
type FileStore interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id int64) (*models.File, error)
	GetByResource(ctx context.Context, resourceType models.FileResource, resourceID int64) ([]*models.File, error)
	Delete(ctx context.Context, id int64) error
}

// FileService stores uploads on disk and tracks their metadata rows
type FileService struct {
	fileRepo FileStore
	storage  filestorage.FileStorage
	logger   zerolog.Logger
}

// NewFileService creates a new FileService
func NewFileService(fileRepo FileStore, storage filestorage.FileStorage, logger zerolog.Logger) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		storage:  storage,
		logger:   logger.With().Str("service", "file").Logger(),
	}
}

// UploadFile writes the upload to storage and records its metadata. The
// resource type picks the storage subdirectory.
func (s *FileService) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, resourceType models.FileResource, resourceID *int64, uploadedBy int64) (*models.File, error) {
	fileURL, err := s.storage.SaveFileWithPath(fileHeader, storageSubdir(resourceType))
	if err != nil {
		return nil, err
	}

	file := &models.File{
		FileName:     fileHeader.Filename,
		FileURL:      fileURL,
		FileSize:     fileHeader.Size,
		FileType:     fileHeader.Header.Get("Content-Type"),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		UploadedBy:   uploadedBy,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		// The metadata row failed, remove the orphaned file from disk.
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("fileUrl", fileURL).Msg("Failed to remove orphaned upload")
		}
		return nil, err
	}

	s.logger.Info().Int64("fileId", file.ID).Str("fileUrl", fileURL).Msg("File uploaded")
	return file, nil
}

// GetFile retrieves a file record by ID
func (s *FileService) GetFile(ctx context.Context, id int64) (*models.File, error) {
	return s.fileRepo.GetByID(ctx, id)
}

// ListFilesByResource lists the files attached to a resource
func (s *FileService) ListFilesByResource(ctx context.Context, resourceType models.FileResource, resourceID int64) ([]*models.File, error) {
	return s.fileRepo.GetByResource(ctx, resourceType, resourceID)
}

// DeleteFile removes a file record and its stored content
func (s *FileService) DeleteFile(ctx context.Context, id int64) error {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.fileRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(file.FileURL); err != nil {
		s.logger.Warn().Err(err).Str("fileUrl", file.FileURL).Msg("Failed to delete stored file")
	}
	return nil
}

func storageSubdir(resourceType models.FileResource) string {
	switch resourceType {
	case models.FileResourceFaculty:
		return "faculty"
	case models.FileResourceAppraisal:
		return "appraisals"
	case models.FileResourceSurvey:
		return "surveys"
	default:
		return "general"
	}
}

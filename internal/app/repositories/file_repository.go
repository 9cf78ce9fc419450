package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
)

// FileRepository handles database operations for the files table
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{
		db: db,
	}
}

const fileColumns = `id, file_name, file_url, file_size, file_type, resource_type, resource_id, uploaded_by, created_at`

func scanFile(row pgx.Row) (*models.File, error) {
	file := &models.File{}
	err := row.Scan(
		&file.ID, &file.FileName, &file.FileURL, &file.FileSize, &file.FileType,
		&file.ResourceType, &file.ResourceID, &file.UploadedBy, &file.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("error scanning file: %w", err)
	}
	return file, nil
}

// Create inserts a new file record and sets its ID
func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO files (file_name, file_url, file_size, file_type, resource_type, resource_id, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		file.FileName, file.FileURL, file.FileSize, file.FileType,
		file.ResourceType, file.ResourceID, file.UploadedBy).
		Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating file record: %w", err)
	}
	return nil
}

// GetByID retrieves a file record by ID
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+fileColumns+`
		FROM files
		WHERE id = $1`, id)
	return scanFile(row)
}

// GetByResource retrieves all file records attached to a resource
func (r *FileRepository) GetByResource(ctx context.Context, resourceType models.FileResource, resourceID int64) ([]*models.File, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+fileColumns+`
		FROM files
		WHERE resource_type = $1 AND resource_id = $2
		ORDER BY id`, resourceType, resourceID)
	if err != nil {
		return nil, fmt.Errorf("error querying files: %w", err)
	}
	defer rows.Close()

	var files []*models.File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating files: %w", err)
	}

	return files, nil
}

// Delete removes a file record
func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM files
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting file record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFileNotFound
	}
	return nil
}

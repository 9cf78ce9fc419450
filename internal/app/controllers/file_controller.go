package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/app/services"
	"github.com/sahyadri/portal/internal/middleware"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
)

// maxUploadSize caps uploads at 10 MiB, matching the storage layer.
const maxUploadSize = 10 << 20

// FileController handles file upload endpoints
type FileController struct {
	fileService *services.FileService
	logger      zerolog.Logger
}

// NewFileController creates a new FileController
func NewFileController(fileService *services.FileService, logger zerolog.Logger) *FileController {
	return &FileController{
		fileService: fileService,
		logger:      logger.With().Str("controller", "file").Logger(),
	}
}

// UploadFile godoc
// @Summary Upload a file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File content"
// @Param resourceType formData string false "FACULTY, APPRAISAL, SURVEY or GENERAL"
// @Param resourceId formData int false "Owning resource ID"
// @Success 201 {object} dto.APIResponse{data=dto.FileResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /files [post]
func (ctrl *FileController) UploadFile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		middleware.HandleAPIError(c, apperrors.ErrTokenMissing)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("A file is required"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("File exceeds the maximum allowed size"))
		return
	}

	resourceType := parseResourceType(c.PostForm("resourceType"))

	var resourceID *int64
	if raw := c.PostForm("resourceId"); raw != "" {
		id, err := parseFormInt64(raw)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid resourceId"))
			return
		}
		resourceID = &id
	}

	file, err := ctrl.fileService.UploadFile(c.Request.Context(), fileHeader, resourceType, resourceID, claims.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromFile(file)))
}

// GetFile godoc
// @Summary Get file metadata by ID
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID"
// @Success 200 {object} dto.APIResponse{data=dto.FileResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id} [get]
func (ctrl *FileController) GetFile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	file, err := ctrl.fileService.GetFile(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromFile(file)))
}

// ListFiles godoc
// @Summary List files attached to a resource
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param resourceType query string true "FACULTY, APPRAISAL, SURVEY or GENERAL"
// @Param resourceId query int true "Owning resource ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.FileResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /files [get]
func (ctrl *FileController) ListFiles(c *gin.Context) {
	resourceID, err := parseOptionalInt64Query(c, "resourceId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if resourceID == nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("resourceId is required"))
		return
	}

	resourceType := parseResourceType(c.Query("resourceType"))

	files, err := ctrl.fileService.ListFilesByResource(c.Request.Context(), resourceType, *resourceID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.FileResponse, 0, len(files))
	for _, file := range files {
		responses = append(responses, dto.FromFile(file))
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// DeleteFile godoc
// @Summary Delete a file
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id} [delete]
func (ctrl *FileController) DeleteFile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.fileService.DeleteFile(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("File deleted"))
}

func parseResourceType(raw string) models.FileResource {
	switch models.FileResource(strings.ToUpper(raw)) {
	case models.FileResourceFaculty:
		return models.FileResourceFaculty
	case models.FileResourceAppraisal:
		return models.FileResourceAppraisal
	case models.FileResourceSurvey:
		return models.FileResourceSurvey
	default:
		return models.FileResourceGeneral
	}
}

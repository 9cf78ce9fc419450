package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/app/services"
	"github.com/sahyadri/portal/internal/middleware"
	"github.com/sahyadri/portal/internal/pkg/helpers"
)

// FacultyController handles faculty profile endpoints
type FacultyController struct {
	facultyService *services.FacultyService
	logger         zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
		logger:         logger.With().Str("controller", "faculty").Logger(),
	}
}

// CreateFaculty godoc
// @Summary Create a faculty profile
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty data"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /faculties [post]
func (ctrl *FacultyController) CreateFaculty(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	faculty, err := ctrl.facultyService.CreateFaculty(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(faculty))
}

// GetFaculty godoc
// @Summary Get a faculty member by ID
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse
// @Router /faculties/{id} [get]
func (ctrl *FacultyController) GetFaculty(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	faculty, err := ctrl.facultyService.GetFaculty(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// ListFaculties godoc
// @Summary List faculty members
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param departmentId query int false "Filter by department"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /faculties [get]
func (ctrl *FacultyController) ListFaculties(c *gin.Context) {
	departmentID, err := parseOptionalInt64Query(c, "departmentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	page, size := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	faculties, total, err := ctrl.facultyService.ListFaculties(c.Request.Context(), departmentID, int(offset), limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      faculties,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateFaculty godoc
// @Summary Update a faculty profile
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Faculty data"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /faculties/{id} [put]
func (ctrl *FacultyController) UpdateFaculty(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	faculty, err := ctrl.facultyService.UpdateFaculty(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// DeleteFaculty godoc
// @Summary Deactivate a faculty member
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /faculties/{id} [delete]
func (ctrl *FacultyController) DeleteFaculty(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.facultyService.DeactivateFaculty(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Faculty deactivated"))
}

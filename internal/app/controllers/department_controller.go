package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/app/services"
	"github.com/sahyadri/portal/internal/middleware"
)

// DepartmentController handles department endpoints
type DepartmentController struct {
	departmentService *services.DepartmentService
	logger            zerolog.Logger
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService, logger zerolog.Logger) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		logger:            logger.With().Str("controller", "department").Logger(),
	}
}

// CreateDepartment godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department data"
// @Success 201 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /departments [post]
func (ctrl *DepartmentController) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	department, err := ctrl.departmentService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(department))
}

// GetDepartment godoc
// @Summary Get a department by ID
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse
// @Router /departments/{id} [get]
func (ctrl *DepartmentController) GetDepartment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	department, err := ctrl.departmentService.GetDepartment(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// ListDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include deactivated departments"
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Router /departments [get]
func (ctrl *DepartmentController) ListDepartments(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"

	departments, err := ctrl.departmentService.ListDepartments(c.Request.Context(), includeInactive)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// UpdateDepartment godoc
// @Summary Update a department
// @Description Setting hodFacultyId here is the authoritative HOD assignment.
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Department data"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /departments/{id} [put]
func (ctrl *DepartmentController) UpdateDepartment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	department, err := ctrl.departmentService.UpdateDepartment(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// DeleteDepartment godoc
// @Summary Deactivate a department
// @Description Soft delete. Rejected with 400 while the department still has active programs.
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /departments/{id} [delete]
func (ctrl *DepartmentController) DeleteDepartment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.departmentService.DeactivateDepartment(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Department deactivated"))
}

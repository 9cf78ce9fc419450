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

// AppraisalController handles faculty self-appraisal endpoints
type AppraisalController struct {
	appraisalService *services.AppraisalService
	logger           zerolog.Logger
}

// NewAppraisalController creates a new AppraisalController
func NewAppraisalController(appraisalService *services.AppraisalService, logger zerolog.Logger) *AppraisalController {
	return &AppraisalController{
		appraisalService: appraisalService,
		logger:           logger.With().Str("controller", "appraisal").Logger(),
	}
}

// CreateAppraisal godoc
// @Summary Open a draft appraisal
// @Tags appraisals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAppraisalRequest true "Appraisal data"
// @Success 201 {object} dto.APIResponse{data=models.Appraisal}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /appraisals [post]
func (ctrl *AppraisalController) CreateAppraisal(c *gin.Context) {
	var req dto.CreateAppraisalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	appraisal, err := ctrl.appraisalService.CreateAppraisal(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(appraisal))
}

// GetAppraisal godoc
// @Summary Get an appraisal by ID
// @Tags appraisals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appraisal ID"
// @Success 200 {object} dto.APIResponse{data=models.Appraisal}
// @Failure 404 {object} dto.ErrorResponse
// @Router /appraisals/{id} [get]
func (ctrl *AppraisalController) GetAppraisal(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	appraisal, err := ctrl.appraisalService.GetAppraisal(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(appraisal))
}

// ListAppraisals godoc
// @Summary List appraisals
// @Description Filter by facultyId or departmentId; facultyId wins when both are given.
// @Tags appraisals
// @Produce json
// @Security BearerAuth
// @Param facultyId query int false "Filter by faculty"
// @Param departmentId query int false "Filter by department"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /appraisals [get]
func (ctrl *AppraisalController) ListAppraisals(c *gin.Context) {
	facultyID, err := parseOptionalInt64Query(c, "facultyId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	departmentID, err := parseOptionalInt64Query(c, "departmentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	page, size := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	appraisals, total, err := ctrl.appraisalService.ListAppraisals(c.Request.Context(), facultyID, departmentID, int(offset), limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      appraisals,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateAppraisal godoc
// @Summary Edit a draft appraisal
// @Tags appraisals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appraisal ID"
// @Param request body dto.UpdateAppraisalRequest true "Self-assessment data"
// @Success 200 {object} dto.APIResponse{data=models.Appraisal}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /appraisals/{id} [put]
func (ctrl *AppraisalController) UpdateAppraisal(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAppraisalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	appraisal, err := ctrl.appraisalService.UpdateAppraisal(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(appraisal))
}

// SubmitAppraisal godoc
// @Summary Submit a draft appraisal for review
// @Tags appraisals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appraisal ID"
// @Success 200 {object} dto.APIResponse{data=models.Appraisal}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /appraisals/{id}/submit [post]
func (ctrl *AppraisalController) SubmitAppraisal(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	appraisal, err := ctrl.appraisalService.SubmitAppraisal(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(appraisal))
}

// ReviewAppraisal godoc
// @Summary Review a submitted appraisal
// @Tags appraisals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appraisal ID"
// @Param request body dto.ReviewAppraisalRequest true "Review verdict"
// @Success 200 {object} dto.APIResponse{data=models.Appraisal}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /appraisals/{id}/review [post]
func (ctrl *AppraisalController) ReviewAppraisal(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.ReviewAppraisalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	appraisal, err := ctrl.appraisalService.ReviewAppraisal(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(appraisal))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/app/services"
	"github.com/sahyadri/portal/internal/middleware"
	"github.com/sahyadri/portal/internal/pkg/helpers"
)

// SurveyController handles feedback survey endpoints
type SurveyController struct {
	surveyService *services.SurveyService
	logger        zerolog.Logger
}

// NewSurveyController creates a new SurveyController
func NewSurveyController(surveyService *services.SurveyService, logger zerolog.Logger) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
		logger:        logger.With().Str("controller", "survey").Logger(),
	}
}

// CreateSurvey godoc
// @Summary Create a feedback survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSurveyRequest true "Survey data"
// @Success 201 {object} dto.APIResponse{data=models.FeedbackSurvey}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /surveys [post]
func (ctrl *SurveyController) CreateSurvey(c *gin.Context) {
	var req dto.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	survey, err := ctrl.surveyService.CreateSurvey(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(survey))
}

// GetSurvey godoc
// @Summary Get a survey by ID
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.APIResponse{data=models.FeedbackSurvey}
// @Failure 404 {object} dto.ErrorResponse
// @Router /surveys/{id} [get]
func (ctrl *SurveyController) GetSurvey(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	survey, err := ctrl.surveyService.GetSurvey(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(survey))
}

// ListSurveys godoc
// @Summary List surveys
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Param programId query int false "Filter by program"
// @Param status query string false "Filter by status (DRAFT, OPEN, CLOSED)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /surveys [get]
func (ctrl *SurveyController) ListSurveys(c *gin.Context) {
	programID, err := parseOptionalInt64Query(c, "programId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var status *models.SurveyStatus
	if raw := c.Query("status"); raw != "" {
		value := models.SurveyStatus(raw)
		status = &value
	}

	page, size := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	surveys, total, err := ctrl.surveyService.ListSurveys(c.Request.Context(), programID, status, int(offset), limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      surveys,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateSurvey godoc
// @Summary Update a survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param request body dto.UpdateSurveyRequest true "Survey data"
// @Success 200 {object} dto.APIResponse{data=models.FeedbackSurvey}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /surveys/{id} [put]
func (ctrl *SurveyController) UpdateSurvey(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	survey, err := ctrl.surveyService.UpdateSurvey(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(survey))
}

// ChangeSurveyStatus godoc
// @Summary Move a survey between DRAFT, OPEN and CLOSED
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param request body dto.SurveyStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.FeedbackSurvey}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /surveys/{id}/status [post]
func (ctrl *SurveyController) ChangeSurveyStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.SurveyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	survey, err := ctrl.surveyService.ChangeSurveyStatus(c.Request.Context(), id, models.SurveyStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(survey))
}

// DeleteSurvey godoc
// @Summary Delete a draft survey
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /surveys/{id} [delete]
func (ctrl *SurveyController) DeleteSurvey(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.surveyService.DeleteSurvey(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Survey deleted"))
}

package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/services"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController       *AuthController
	FacultyController    *FacultyController
	DepartmentController *DepartmentController
	ProgramController    *ProgramController
	AppraisalController  *AppraisalController
	SurveyController     *SurveyController
	FileController       *FileController
	HealthController     *HealthController
}

// NewControllers wires all controllers onto the services
func NewControllers(svcs *services.Services, logger zerolog.Logger) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svcs.AuthService, logger),
		FacultyController:    NewFacultyController(svcs.FacultyService, logger),
		DepartmentController: NewDepartmentController(svcs.DepartmentService, logger),
		ProgramController:    NewProgramController(svcs.ProgramService, logger),
		AppraisalController:  NewAppraisalController(svcs.AppraisalService, logger),
		SurveyController:     NewSurveyController(svcs.SurveyService, logger),
		FileController:       NewFileController(svcs.FileService, logger),
		HealthController:     NewHealthController(),
	}
}

// parseIDParam reads a positive int64 path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewBadRequestError("Invalid " + name + " parameter")
	}
	return id, nil
}

// parseFormInt64 reads a positive int64 form value
func parseFormInt64(raw string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return 0, apperrors.ErrBadRequest
	}
	return value, nil
}

// parseOptionalInt64Query reads an optional int64 query parameter
func parseOptionalInt64Query(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return nil, apperrors.NewBadRequestError("Invalid " + name + " parameter")
	}
	return &value, nil
}

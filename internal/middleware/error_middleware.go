package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/sahyadri/portal/internal/pkg/logger"
)

// debugMode controls whether unexpected error text is echoed to clients.
var debugMode bool

// SetDebugMode toggles error detail echo for non-production deployments
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// HandleAPIError maps a service error onto the HTTP response. Sentinel errors
// from apperrors carry their status; anything unrecognized becomes a logged
// 500 with a generic body.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		handleSentinel(c, customErr.Err, customErr.Message)
		return
	}
	handleSentinel(c, err, "")
}

func handleSentinel(c *gin.Context, err error, message string) {
	status, code, defaultMessage := classifyError(err)
	if message == "" {
		message = defaultMessage
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		if debugMode {
			respondError(c, status, dto.NewErrorDetail(code, message).WithDetails(err.Error()))
			return
		}
	}

	respondError(c, status, dto.NewErrorDetail(code, message))
}

func classifyError(err error) (int, dto.ErrorCode, string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"
	case errors.Is(err, apperrors.ErrTokenMissing):
		return http.StatusUnauthorized, dto.ErrorCodeTokenRequired, "Access token required"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusForbidden, dto.ErrorCodeExpiredToken, "Token expired"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusForbidden, dto.ErrorCodeInvalidToken, "Invalid token"
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusUnauthorized, dto.ErrorCodeInactiveUser, "Invalid or inactive user"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Insufficient permissions"
	case errors.Is(err, apperrors.ErrRoleNotAllowed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Unknown role"

	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Faculty not found"
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Department not found"
	case errors.Is(err, apperrors.ErrProgramNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Program not found"
	case errors.Is(err, apperrors.ErrAppraisalNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Appraisal not found"
	case errors.Is(err, apperrors.ErrSurveyNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Survey not found"
	case errors.Is(err, apperrors.ErrFileNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "File not found"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"

	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username or email already in use"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already in use"
	case errors.Is(err, apperrors.ErrFacultyEmailExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Official email already in use"
	case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Department name or code already in use"
	case errors.Is(err, apperrors.ErrProgramAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Program code already in use"
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeResourceConflict, "Conflicting state"

	case errors.Is(err, apperrors.ErrDepartmentHasActivePrograms):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Department still has active programs"
	case errors.Is(err, apperrors.ErrAppraisalNotEditable):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Appraisal is not editable in its current status"
	case errors.Is(err, apperrors.ErrSurveyInvalidTransition):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid survey status transition"
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request"

	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}

// HandleValidationError answers a gin binding failure with a 400
func HandleValidationError(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, dto.HandleValidationError(err))
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.NewErrorResponse(detail))
}

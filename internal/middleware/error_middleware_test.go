package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)
	return recorder
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "AUTH_001"},
		{name: "inactive account", err: apperrors.ErrAccountDisabled, wantStatus: http.StatusUnauthorized, wantCode: "AUTH_005"},
		{name: "permission denied", err: apperrors.ErrPermissionDenied, wantStatus: http.StatusForbidden, wantCode: "AUTH_007"},
		{name: "department not found", err: apperrors.ErrDepartmentNotFound, wantStatus: http.StatusNotFound, wantCode: "RES_001"},
		{name: "duplicate department", err: apperrors.ErrDepartmentAlreadyExists, wantStatus: http.StatusConflict, wantCode: "RES_002"},
		{name: "active programs block deactivation", err: apperrors.ErrDepartmentHasActivePrograms, wantStatus: http.StatusBadRequest, wantCode: "VAL_001"},
		{name: "survey transition", err: apperrors.ErrSurveyInvalidTransition, wantStatus: http.StatusBadRequest, wantCode: "VAL_001"},
		{name: "unknown error", err: errors.New("pool exhausted"), wantStatus: http.StatusInternalServerError, wantCode: "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respondWith(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestHandleAPIError_WrappedSentinel(t *testing.T) {
	wrapped := apperrors.NewResourceNotFoundError("Faculty not found")
	w := respondWith(wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Faculty not found")
}

func TestHandleAPIError_DebugDetails(t *testing.T) {
	SetDebugMode(true)
	t.Cleanup(func() { SetDebugMode(false) })

	w := respondWith(errors.New("pool exhausted"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "pool exhausted")
}

func TestHandleAPIError_NoDetailsInProduction(t *testing.T) {
	SetDebugMode(false)

	w := respondWith(errors.New("pool exhausted"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pool exhausted")
}

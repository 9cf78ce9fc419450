package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/sahyadri/portal/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserPrincipals struct {
	user       *models.User
	linkedUser *models.User
}

func (s *stubUserPrincipals) GetByID(_ context.Context, id int64) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserPrincipals) GetActiveByFacultyID(_ context.Context, facultyID int64) (*models.User, error) {
	if s.linkedUser != nil && s.linkedUser.FacultyID != nil && *s.linkedUser.FacultyID == facultyID {
		return s.linkedUser, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type stubFacultyPrincipals struct {
	faculty *models.Faculty
}

func (s *stubFacultyPrincipals) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	if s.faculty != nil && s.faculty.ID == id {
		return s.faculty, nil
	}
	return nil, apperrors.ErrFacultyNotFound
}

type stubRoleNames struct {
	names map[int64][]string
}

func (s *stubRoleNames) GetActiveRoleNames(_ context.Context, userID int64) ([]string, error) {
	return s.names[userID], nil
}

func newTestMiddleware(users *stubUserPrincipals, faculties *stubFacultyPrincipals, roles *stubRoleNames) (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "portal-test",
	})
	return NewAuthMiddleware(jwtService, users, faculties, roles), jwtService
}

func performRequest(handler gin.HandlerFunc, gates []gin.HandlerFunc, authorization string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := append(gates, handler)
	router.GET("/protected", handlers...)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func TestAuthenticate(t *testing.T) {
	activeUser := &models.User{ID: 5, Username: "registrar", UserType: models.UserTypeAdmin, IsActive: true}

	t.Run("missing header", func(t *testing.T) {
		m, _ := newTestMiddleware(&stubUserPrincipals{}, &stubFacultyPrincipals{}, &stubRoleNames{})

		w := performRequest(okHandler, []gin.HandlerFunc{m.Authenticate()}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Access token required")
	})

	t.Run("malformed token", func(t *testing.T) {
		m, _ := newTestMiddleware(&stubUserPrincipals{}, &stubFacultyPrincipals{}, &stubRoleNames{})

		w := performRequest(okHandler, []gin.HandlerFunc{m.Authenticate()}, "Bearer not.a.token")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("expired token", func(t *testing.T) {
		m, _ := newTestMiddleware(&stubUserPrincipals{user: activeUser}, &stubFacultyPrincipals{}, &stubRoleNames{})

		expired := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: -time.Minute})
		token, _, err := expired.GenerateToken(5, "registrar", "admin", nil, "")
		require.NoError(t, err)

		w := performRequest(okHandler, []gin.HandlerFunc{m.Authenticate()}, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("valid token for active user", func(t *testing.T) {
		m, jwtService := newTestMiddleware(&stubUserPrincipals{user: activeUser}, &stubFacultyPrincipals{}, &stubRoleNames{})

		token, _, err := jwtService.GenerateToken(5, "registrar", "admin", nil, "")
		require.NoError(t, err)

		w := performRequest(func(c *gin.Context) {
			claims := GetClaims(c)
			require.NotNil(t, claims)
			assert.Equal(t, int64(5), claims.UserID)
			c.String(http.StatusOK, "ok")
		}, []gin.HandlerFunc{m.Authenticate()}, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("deactivated user with unexpired token", func(t *testing.T) {
		inactive := &models.User{ID: 5, Username: "registrar", IsActive: false}
		m, jwtService := newTestMiddleware(&stubUserPrincipals{user: inactive}, &stubFacultyPrincipals{}, &stubRoleNames{})

		token, _, err := jwtService.GenerateToken(5, "registrar", "admin", nil, "")
		require.NoError(t, err)

		w := performRequest(okHandler, []gin.HandlerFunc{m.Authenticate()}, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or inactive user")
	})

	t.Run("faculty token checks the faculties table", func(t *testing.T) {
		faculties := &stubFacultyPrincipals{
			faculty: &models.Faculty{ID: 9, OfficialEmail: "jane@sahyadri.edu.in", IsActive: true},
		}
		m, jwtService := newTestMiddleware(&stubUserPrincipals{}, faculties, &stubRoleNames{})

		facultyID := int64(9)
		token, _, err := jwtService.GenerateToken(9, "jane@sahyadri.edu.in", "faculty", &facultyID, "Jane Mathew")
		require.NoError(t, err)

		w := performRequest(okHandler, []gin.HandlerFunc{m.Authenticate()}, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("deactivated faculty rejected", func(t *testing.T) {
		faculties := &stubFacultyPrincipals{
			faculty: &models.Faculty{ID: 9, IsActive: false},
		}
		m, jwtService := newTestMiddleware(&stubUserPrincipals{}, faculties, &stubRoleNames{})

		facultyID := int64(9)
		token, _, err := jwtService.GenerateToken(9, "jane@sahyadri.edu.in", "faculty", &facultyID, "Jane Mathew")
		require.NoError(t, err)

		w := performRequest(okHandler, []gin.HandlerFunc{m.Authenticate()}, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	gates := func(m *AuthMiddleware, roles ...string) []gin.HandlerFunc {
		return []gin.HandlerFunc{m.Authenticate(), m.RequireRole(roles...)}
	}

	t.Run("allowed by user type", func(t *testing.T) {
		users := &stubUserPrincipals{
			user: &models.User{ID: 5, UserType: models.UserTypeAdmin, IsActive: true},
		}
		m, jwtService := newTestMiddleware(users, &stubFacultyPrincipals{}, &stubRoleNames{})

		token, _, err := jwtService.GenerateToken(5, "registrar", "admin", nil, "")
		require.NoError(t, err)

		w := performRequest(okHandler, gates(m, models.RoleAdmin), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("allowed by explicit grant", func(t *testing.T) {
		users := &stubUserPrincipals{
			user: &models.User{ID: 5, UserType: models.UserTypeStudent, IsActive: true},
		}
		roles := &stubRoleNames{names: map[int64][]string{5: {models.RoleHOD}}}
		m, jwtService := newTestMiddleware(users, &stubFacultyPrincipals{}, roles)

		token, _, err := jwtService.GenerateToken(5, "jdoe", "student", nil, "")
		require.NoError(t, err)

		w := performRequest(okHandler, gates(m, models.RoleHOD, models.RoleAdmin), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("denied without type or grant", func(t *testing.T) {
		users := &stubUserPrincipals{
			user: &models.User{ID: 5, UserType: models.UserTypeStudent, IsActive: true},
		}
		m, jwtService := newTestMiddleware(users, &stubFacultyPrincipals{}, &stubRoleNames{})

		token, _, err := jwtService.GenerateToken(5, "jdoe", "student", nil, "")
		require.NoError(t, err)

		w := performRequest(okHandler, gates(m, models.RoleAdmin), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Insufficient permissions")
	})

	t.Run("faculty token resolves grants through the linked user", func(t *testing.T) {
		facultyID := int64(9)
		faculties := &stubFacultyPrincipals{
			faculty: &models.Faculty{ID: 9, IsActive: true},
		}
		users := &stubUserPrincipals{
			linkedUser: &models.User{ID: 5, FacultyID: &facultyID, IsActive: true},
		}
		roles := &stubRoleNames{names: map[int64][]string{5: {models.RoleHOD}}}
		m, jwtService := newTestMiddleware(users, faculties, roles)

		token, _, err := jwtService.GenerateToken(9, "jane@sahyadri.edu.in", "faculty", &facultyID, "Jane Mathew")
		require.NoError(t, err)

		w := performRequest(okHandler, gates(m, models.RoleHOD), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("faculty without a linked account is denied", func(t *testing.T) {
		facultyID := int64(9)
		faculties := &stubFacultyPrincipals{
			faculty: &models.Faculty{ID: 9, IsActive: true},
		}
		m, jwtService := newTestMiddleware(&stubUserPrincipals{}, faculties, &stubRoleNames{})

		token, _, err := jwtService.GenerateToken(9, "jane@sahyadri.edu.in", "faculty", &facultyID, "Jane Mathew")
		require.NoError(t, err)

		w := performRequest(okHandler, gates(m, models.RoleHOD), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/sahyadri/portal/internal/pkg/auth"
	"github.com/sahyadri/portal/internal/pkg/logger"
)

// Context keys set by the auth middleware
const (
	ContextClaims   = "claims"
	ContextUserID   = "userId"
	ContextUserType = "userType"
)

// UserPrincipalStore loads user principals for token verification
type UserPrincipalStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetActiveByFacultyID(ctx context.Context, facultyID int64) (*models.User, error)
}

// FacultyPrincipalStore loads faculty principals for token verification
type FacultyPrincipalStore interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
}

// RoleNameStore loads active role names for the role gate
type RoleNameStore interface {
	GetActiveRoleNames(ctx context.Context, userID int64) ([]string, error)
}

// AuthMiddleware guards routes with bearer token authentication and role gates
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	userRepo    UserPrincipalStore
	facultyRepo FacultyPrincipalStore
	roleRepo    RoleNameStore
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo UserPrincipalStore, facultyRepo FacultyPrincipalStore, roleRepo RoleNameStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		userRepo:    userRepo,
		facultyRepo: facultyRepo,
		roleRepo:    roleRepo,
	}
}

// Authenticate validates the bearer token and re-fetches the principal so a
// deactivated account is rejected even while its token is still unexpired.
// Missing tokens and dead principals answer 401; expired and malformed
// tokens answer 403, each with a distinct message.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeTokenRequired, "Access token required")
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortWithError(c, http.StatusForbidden, dto.ErrorCodeExpiredToken, "Token expired")
				return
			}
			abortWithError(c, http.StatusForbidden, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		if err := m.checkPrincipal(c, claims); err != nil {
			if errors.Is(err, apperrors.ErrAccountDisabled) {
				abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeInactiveUser, "Invalid or inactive user")
				return
			}
			logger.Error().Err(err).Int64("userId", claims.UserID).Msg("Principal lookup failed")
			abortWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserType, claims.UserType)
		c.Next()
	}
}

// checkPrincipal re-fetches the account behind the claims. Faculty-universe
// tokens resolve against the faculties table, everything else against users.
func (m *AuthMiddleware) checkPrincipal(c *gin.Context, claims *auth.Claims) error {
	ctx := c.Request.Context()

	if claims.FacultyID != nil && claims.UserType == string(models.UserTypeFaculty) {
		faculty, err := m.facultyRepo.GetByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrFacultyNotFound) {
				return apperrors.ErrAccountDisabled
			}
			return err
		}
		if !faculty.IsActive {
			return apperrors.ErrAccountDisabled
		}
		return nil
	}

	user, err := m.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrAccountDisabled
		}
		return err
	}
	if !user.IsActive {
		return apperrors.ErrAccountDisabled
	}
	return nil
}

// RequireRole allows the request through when the principal's user type or
// any of its active explicit roles matches the allowed list. The grants are
// read directly from user_roles here, not through login-time resolution, so
// headship that was never materialized does not satisfy a gate by itself.
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		if _, ok := allowed[claims.UserType]; ok {
			c.Next()
			return
		}

		userID, err := m.roleQueryUserID(c.Request.Context(), claims)
		if err != nil {
			logger.Error().Err(err).Int64("userId", claims.UserID).Msg("Role gate user lookup failed")
			abortWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
			return
		}

		if userID != 0 {
			names, err := m.roleRepo.GetActiveRoleNames(c.Request.Context(), userID)
			if err != nil {
				logger.Error().Err(err).Int64("userId", userID).Msg("Role gate query failed")
				abortWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
				return
			}
			for _, name := range names {
				if _, ok := allowed[name]; ok {
					c.Next()
					return
				}
			}
		}

		abortWithError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Insufficient permissions")
	}
}

// roleQueryUserID maps the claims onto a users-table id for the grant query.
// Faculty-universe tokens go through the linked user account; a faculty with
// no account has no explicit grants and yields 0.
func (m *AuthMiddleware) roleQueryUserID(ctx context.Context, claims *auth.Claims) (int64, error) {
	if claims.FacultyID == nil || claims.UserType != string(models.UserTypeFaculty) {
		return claims.UserID, nil
	}

	user, err := m.userRepo.GetActiveByFacultyID(ctx, *claims.FacultyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return user.ID, nil
}

// GetClaims returns the token claims attached by Authenticate, or nil
func GetClaims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func abortWithError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

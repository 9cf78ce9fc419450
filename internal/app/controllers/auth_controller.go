package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/app/services"
	"github.com/sahyadri/portal/internal/middleware"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger.With().Str("controller", "auth").Logger(),
	}
}

// Login godoc
// @Summary Authenticate a user or faculty member
// @Description Issues a 24h access token. Identifiers containing @ are matched against faculty official emails first, then user emails.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Verify godoc
// @Summary Verify the current access token
// @Description Returns the current principal with freshly resolved roles.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /auth/verify [post]
func (ctrl *AuthController) Verify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		middleware.HandleAPIError(c, apperrors.ErrTokenMissing)
		return
	}

	resp, err := ctrl.authService.Verify(c.Request.Context(), claims)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless; logout always succeeds and performs no server-side revocation.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// LogoutNoAuth godoc
// @Summary Log out without a valid token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout-no-auth [post]
func (ctrl *AuthController) LogoutNoAuth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// CreateUser godoc
// @Summary Create a portal account
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Account data"
// @Success 201 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/create-user [post]
func (ctrl *AuthController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := ctrl.authService.CreateUser(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(user))
}

// AssignRole godoc
// @Summary Grant a role to a user
// @Description Granting hod also ensures the base faculty role in the same transaction.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignRoleRequest true "Role grant"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/assign-role [post]
func (ctrl *AuthController) AssignRole(c *gin.Context) {
	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := ctrl.authService.AssignRole(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Role assigned"))
}

// RevokeRole godoc
// @Summary Revoke a role from a user
// @Description Deactivates an explicit role grant. Revoking a grant the user does not hold answers 404.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RevokeRoleRequest true "Role revocation"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/revoke-role [post]
func (ctrl *AuthController) RevokeRole(c *gin.Context) {
	var req dto.RevokeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := ctrl.authService.RevokeRole(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Role revoked"))
}

// GetUserRoles godoc
// @Summary Get a user's effective roles
// @Description Available to the user themselves or to admins.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.RoleInfo}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/roles/{userId} [get]
func (ctrl *AuthController) GetUserRoles(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil {
		middleware.HandleAPIError(c, apperrors.ErrTokenMissing)
		return
	}
	if claims.UserID != userID && claims.UserType != string(models.UserTypeAdmin) {
		middleware.HandleAPIError(c, apperrors.NewForbiddenError("You may only view your own roles"))
		return
	}

	roles, err := ctrl.authService.GetUserRoles(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(roles))
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/sahyadri/portal/internal/pkg/auth"
)

// UserStore defines the user persistence operations used by authentication
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetActiveByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	GetActiveByFacultyID(ctx context.Context, facultyID int64) (*models.User, error)
	UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// FacultyCredentialStore defines the faculty lookups used by authentication
type FacultyCredentialStore interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetActiveByOfficialEmail(ctx context.Context, email string) (*models.Faculty, error)
}

// RoleGrantStore defines the explicit grant operations used by authentication
type RoleGrantStore interface {
	AssignRole(ctx context.Context, userID int64, role string, departmentID *int64) error
	HasActiveRole(ctx context.Context, userID int64, role string, departmentID *int64) (bool, error)
	RevokeRole(ctx context.Context, userID int64, role string, departmentID *int64) error
}

// RoleResolver resolves effective roles for a principal
type RoleResolver interface {
	ResolveRoles(ctx context.Context, userID int64, facultyID *int64) ([]models.RoleAssignment, error)
	ResolveImplicitHOD(ctx context.Context, facultyID int64) ([]models.RoleAssignment, error)
}

// AuthService implements login against the two credential stores, token
// verification, and administrative user/role management
type AuthService struct {
	userRepo    UserStore
	facultyRepo FacultyCredentialStore
	roleRepo    RoleGrantStore
	roleService RoleResolver
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserStore,
	facultyRepo FacultyCredentialStore,
	roleRepo RoleGrantStore,
	roleService RoleResolver,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		facultyRepo: facultyRepo,
		roleRepo:    roleRepo,
		roleService: roleService,
		jwtService:  jwtService,
		logger:      logger.With().Str("service", "auth").Logger(),
	}
}

// Login authenticates a principal. Identifiers containing @ are first tried
// against the faculty official email store, then against the user store.
// Every failure collapses into the same invalid-credentials error so the
// response never reveals which store matched.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.Contains(req.Username, "@") {
		resp, err := s.loginFaculty(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, err
		}
		// No faculty with that official email; the identifier may still be a
		// users-table email.
	}

	return s.loginUser(ctx, req)
}

func (s *AuthService) loginFaculty(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	faculty, err := s.facultyRepo.GetActiveByOfficialEmail(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(faculty.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	facultyID := faculty.ID
	token, expiresIn, err := s.jwtService.GenerateToken(
		faculty.ID, faculty.OfficialEmail, string(models.UserTypeFaculty), &facultyID, faculty.FullName())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	roles, err := s.resolveFacultyRoles(ctx, faculty)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("facultyId", faculty.ID).Msg("Faculty login")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User: dto.AuthUser{
			ID:          faculty.ID,
			Username:    faculty.OfficialEmail,
			Email:       faculty.OfficialEmail,
			UserType:    string(models.UserTypeFaculty),
			Roles:       dto.RolesFromAssignments(roles),
			FacultyInfo: dto.FacultyInfoFromModel(faculty),
		},
	}, nil
}

func (s *AuthService) loginUser(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetActiveByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	roles, err := s.roleService.ResolveRoles(ctx, user.ID, user.FacultyID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login time")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(
		user.ID, user.Username, string(user.UserType), nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User login")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User: dto.AuthUser{
			ID:          user.ID,
			Username:    user.Username,
			Email:       user.Email,
			UserType:    string(user.UserType),
			Roles:       dto.RolesFromAssignments(roles),
			FacultyInfo: s.facultyInfoForUser(ctx, user),
		},
	}, nil
}

// Verify re-validates the principal behind a set of token claims and returns
// its current profile with freshly resolved roles
func (s *AuthService) Verify(ctx context.Context, claims *auth.Claims) (*dto.LoginResponse, error) {
	if claims.FacultyID != nil && claims.UserType == string(models.UserTypeFaculty) {
		return s.verifyFaculty(ctx, claims)
	}
	return s.verifyUser(ctx, claims)
}

func (s *AuthService) verifyFaculty(ctx context.Context, claims *auth.Claims) (*dto.LoginResponse, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrAccountDisabled
		}
		return nil, err
	}
	if !faculty.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	roles, err := s.resolveFacultyRoles(ctx, faculty)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User: dto.AuthUser{
			ID:          faculty.ID,
			Username:    faculty.OfficialEmail,
			Email:       faculty.OfficialEmail,
			UserType:    string(models.UserTypeFaculty),
			Roles:       dto.RolesFromAssignments(roles),
			FacultyInfo: dto.FacultyInfoFromModel(faculty),
		},
	}, nil
}

func (s *AuthService) verifyUser(ctx context.Context, claims *auth.Claims) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrAccountDisabled
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	roles, err := s.roleService.ResolveRoles(ctx, user.ID, user.FacultyID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User: dto.AuthUser{
			ID:          user.ID,
			Username:    user.Username,
			Email:       user.Email,
			UserType:    string(user.UserType),
			Roles:       dto.RolesFromAssignments(roles),
			FacultyInfo: s.facultyInfoForUser(ctx, user),
		},
	}, nil
}

// resolveFacultyRoles resolves roles for a faculty-universe principal. When a
// linked user account exists resolution goes through it so discovered
// headship is persisted; otherwise only the implicit tuples are returned.
func (s *AuthService) resolveFacultyRoles(ctx context.Context, faculty *models.Faculty) ([]models.RoleAssignment, error) {
	user, err := s.userRepo.GetActiveByFacultyID(ctx, faculty.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return s.roleService.ResolveImplicitHOD(ctx, faculty.ID)
		}
		return nil, err
	}
	facultyID := faculty.ID
	return s.roleService.ResolveRoles(ctx, user.ID, &facultyID)
}

func (s *AuthService) facultyInfoForUser(ctx context.Context, user *models.User) *dto.FacultyInfo {
	if user.FacultyID == nil {
		return nil
	}
	faculty, err := s.facultyRepo.GetByID(ctx, *user.FacultyID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to load linked faculty profile")
		return nil
	}
	return dto.FacultyInfoFromModel(faculty)
}

// CreateUser creates a portal account. Admin only; enforced at the route.
func (s *AuthService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	exists, err := s.userRepo.UsernameOrEmailExists(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	if req.FacultyID != nil {
		if _, err := s.facultyRepo.GetByID(ctx, *req.FacultyID); err != nil {
			return nil, err
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		UserType:  models.UserType(req.UserType),
		FacultyID: req.FacultyID,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("userType", req.UserType).Msg("User created")
	return user, nil
}

// AssignRole grants a role to a user. Unknown role names are rejected; the
// repository ensures the faculty base role before a hod grant.
func (s *AuthService) AssignRole(ctx context.Context, req dto.AssignRoleRequest) error {
	if !isKnownRole(req.Role) {
		return apperrors.ErrRoleNotAllowed
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return err
	}

	if err := s.roleRepo.AssignRole(ctx, req.UserID, req.Role, req.DepartmentID); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", req.UserID).Str("role", req.Role).Msg("Role assigned")
	return nil
}

// RevokeRole deactivates an explicit role grant. Revoking a grant the user
// does not hold is a 404, not a silent no-op.
func (s *AuthService) RevokeRole(ctx context.Context, req dto.RevokeRoleRequest) error {
	if !isKnownRole(req.Role) {
		return apperrors.ErrRoleNotAllowed
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return err
	}

	held, err := s.roleRepo.HasActiveRole(ctx, req.UserID, req.Role, req.DepartmentID)
	if err != nil {
		return err
	}
	if !held {
		return apperrors.NewResourceNotFoundError("Role assignment not found")
	}

	if err := s.roleRepo.RevokeRole(ctx, req.UserID, req.Role, req.DepartmentID); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", req.UserID).Str("role", req.Role).Msg("Role revoked")
	return nil
}

// GetUserRoles returns the effective roles of a user
func (s *AuthService) GetUserRoles(ctx context.Context, userID int64) ([]dto.RoleInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roles, err := s.roleService.ResolveRoles(ctx, user.ID, user.FacultyID)
	if err != nil {
		return nil, err
	}
	return dto.RolesFromAssignments(roles), nil
}

func isKnownRole(role string) bool {
	for _, known := range models.KnownRoles {
		if role == known {
			return true
		}
	}
	return false
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/models/dto"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/sahyadri/portal/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserStore struct {
	user          *models.User
	linkedUser    *models.User
	exists        bool
	created       *models.User
	lastLoginHits int
}

func (s *stubUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = 100
	s.created = user
	return nil
}

func (s *stubUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) GetActiveByUsernameOrEmail(_ context.Context, identifier string) (*models.User, error) {
	if s.user != nil && s.user.IsActive && (s.user.Username == identifier || s.user.Email == identifier) {
		return s.user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) GetActiveByFacultyID(_ context.Context, facultyID int64) (*models.User, error) {
	if s.linkedUser != nil && s.linkedUser.FacultyID != nil && *s.linkedUser.FacultyID == facultyID {
		return s.linkedUser, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) UsernameOrEmailExists(_ context.Context, _, _ string) (bool, error) {
	return s.exists, nil
}

func (s *stubUserStore) UpdateLastLogin(_ context.Context, _ int64) error {
	s.lastLoginHits++
	return nil
}

type stubFacultyStore struct {
	faculty *models.Faculty
}

func (s *stubFacultyStore) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	if s.faculty != nil && s.faculty.ID == id {
		return s.faculty, nil
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (s *stubFacultyStore) GetActiveByOfficialEmail(_ context.Context, email string) (*models.Faculty, error) {
	if s.faculty != nil && s.faculty.IsActive && s.faculty.OfficialEmail == email {
		return s.faculty, nil
	}
	return nil, apperrors.ErrFacultyNotFound
}

type stubRoleGrantStore struct {
	userID       int64
	role         string
	departmentID *int64
	held         bool
	revokeCalls  int
	revokedRole  string
}

func (s *stubRoleGrantStore) AssignRole(_ context.Context, userID int64, role string, departmentID *int64) error {
	s.userID = userID
	s.role = role
	s.departmentID = departmentID
	return nil
}

func (s *stubRoleGrantStore) HasActiveRole(_ context.Context, _ int64, _ string, _ *int64) (bool, error) {
	return s.held, nil
}

func (s *stubRoleGrantStore) RevokeRole(_ context.Context, _ int64, role string, _ *int64) error {
	s.revokeCalls++
	s.revokedRole = role
	return nil
}

type stubResolver struct {
	roles         []models.RoleAssignment
	implicitRoles []models.RoleAssignment
}

func (s *stubResolver) ResolveRoles(_ context.Context, _ int64, _ *int64) ([]models.RoleAssignment, error) {
	return s.roles, nil
}

func (s *stubResolver) ResolveImplicitHOD(_ context.Context, _ int64) ([]models.RoleAssignment, error) {
	return s.implicitRoles, nil
}

func newTestAuthService(users *stubUserStore, faculties *stubFacultyStore, grants *stubRoleGrantStore, resolver *stubResolver) (*AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "portal-test",
	})
	return NewAuthService(users, faculties, grants, resolver, jwtService, zerolog.Nop()), jwtService
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLogin_UserUniverse(t *testing.T) {
	users := &stubUserStore{
		user: &models.User{
			ID:       5,
			Username: "registrar",
			Email:    "registrar@sahyadri.edu.in",
			Password: hashFor(t, "password123"),
			UserType: models.UserTypeAdmin,
			IsActive: true,
		},
	}
	resolver := &stubResolver{roles: []models.RoleAssignment{{Role: models.RoleAdmin}}}
	svc, jwtService := newTestAuthService(users, &stubFacultyStore{}, &stubRoleGrantStore{}, resolver)

	t.Run("login by username", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "registrar", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin", resp.User.UserType)
		require.Len(t, resp.User.Roles, 1)
		assert.Equal(t, models.RoleAdmin, resp.User.Roles[0].Role)
		assert.Equal(t, 1, users.lastLoginHits)

		claims, err := jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(5), claims.UserID)
		assert.Nil(t, claims.FacultyID)
	})

	t.Run("login by email", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "registrar@sahyadri.edu.in", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "registrar", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same generic error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "password123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestLogin_InactiveUserRejected(t *testing.T) {
	users := &stubUserStore{
		user: &models.User{
			ID:       5,
			Username: "registrar",
			Password: hashFor(t, "password123"),
			IsActive: false,
		},
	}
	svc, _ := newTestAuthService(users, &stubFacultyStore{}, &stubRoleGrantStore{}, &stubResolver{})

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "registrar", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_FacultyUniverse(t *testing.T) {
	faculties := &stubFacultyStore{
		faculty: &models.Faculty{
			ID:            9,
			FirstName:     "Jane",
			LastName:      "Mathew",
			OfficialEmail: "jane@sahyadri.edu.in",
			Password:      hashFor(t, "password123"),
			IsActive:      true,
		},
	}
	resolver := &stubResolver{
		implicitRoles: []models.RoleAssignment{
			{Role: models.RoleHOD, DepartmentID: ptrInt64(3), DepartmentName: ptrString("CSE")},
		},
	}
	svc, jwtService := newTestAuthService(&stubUserStore{}, faculties, &stubRoleGrantStore{}, resolver)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "jane@sahyadri.edu.in", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, "faculty", resp.User.UserType)
	require.NotNil(t, resp.User.FacultyInfo)
	assert.Equal(t, "Jane Mathew", resp.User.FacultyInfo.Name)
	require.Len(t, resp.User.Roles, 1)
	assert.Equal(t, models.RoleHOD, resp.User.Roles[0].Role)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "faculty", claims.UserType)
	require.NotNil(t, claims.FacultyID)
	assert.Equal(t, int64(9), *claims.FacultyID)
	assert.Equal(t, "Jane Mathew", claims.Name)
}

func TestLogin_EmailFallsBackToUserStore(t *testing.T) {
	// No faculty has this official email, but a portal user registered it.
	users := &stubUserStore{
		user: &models.User{
			ID:       6,
			Username: "clerk",
			Email:    "clerk@sahyadri.edu.in",
			Password: hashFor(t, "password123"),
			UserType: models.UserTypeStudent,
			IsActive: true,
		},
	}
	svc, _ := newTestAuthService(users, &stubFacultyStore{}, &stubRoleGrantStore{}, &stubResolver{})

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "clerk@sahyadri.edu.in", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), resp.User.ID)
	assert.Equal(t, "student", resp.User.UserType)
}

func TestAssignRole(t *testing.T) {
	users := &stubUserStore{
		user: &models.User{ID: 5, Username: "registrar", IsActive: true},
	}

	t.Run("unknown role rejected", func(t *testing.T) {
		svc, _ := newTestAuthService(users, &stubFacultyStore{}, &stubRoleGrantStore{}, &stubResolver{})
		err := svc.AssignRole(context.Background(), dto.AssignRoleRequest{UserID: 5, Role: "superuser"})
		assert.ErrorIs(t, err, apperrors.ErrRoleNotAllowed)
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		svc, _ := newTestAuthService(users, &stubFacultyStore{}, &stubRoleGrantStore{}, &stubResolver{})
		err := svc.AssignRole(context.Background(), dto.AssignRoleRequest{UserID: 404, Role: models.RoleFaculty})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("hod grant goes through the store", func(t *testing.T) {
		grants := &stubRoleGrantStore{}
		svc, _ := newTestAuthService(users, &stubFacultyStore{}, grants, &stubResolver{})

		err := svc.AssignRole(context.Background(), dto.AssignRoleRequest{
			UserID: 5, Role: models.RoleHOD, DepartmentID: ptrInt64(3),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), grants.userID)
		assert.Equal(t, models.RoleHOD, grants.role)
		require.NotNil(t, grants.departmentID)
		assert.Equal(t, int64(3), *grants.departmentID)
	})
}

func TestRevokeRole(t *testing.T) {
	users := &stubUserStore{
		user: &models.User{ID: 5, Username: "registrar", IsActive: true},
	}

	t.Run("unknown role rejected", func(t *testing.T) {
		svc, _ := newTestAuthService(users, &stubFacultyStore{}, &stubRoleGrantStore{}, &stubResolver{})
		err := svc.RevokeRole(context.Background(), dto.RevokeRoleRequest{UserID: 5, Role: "superuser"})
		assert.ErrorIs(t, err, apperrors.ErrRoleNotAllowed)
	})

	t.Run("grant not held answers not found", func(t *testing.T) {
		grants := &stubRoleGrantStore{held: false}
		svc, _ := newTestAuthService(users, &stubFacultyStore{}, grants, &stubResolver{})

		err := svc.RevokeRole(context.Background(), dto.RevokeRoleRequest{UserID: 5, Role: models.RoleHOD, DepartmentID: ptrInt64(3)})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Zero(t, grants.revokeCalls)
	})

	t.Run("held grant is revoked", func(t *testing.T) {
		grants := &stubRoleGrantStore{held: true}
		svc, _ := newTestAuthService(users, &stubFacultyStore{}, grants, &stubResolver{})

		err := svc.RevokeRole(context.Background(), dto.RevokeRoleRequest{UserID: 5, Role: models.RoleHOD, DepartmentID: ptrInt64(3)})
		require.NoError(t, err)
		assert.Equal(t, 1, grants.revokeCalls)
		assert.Equal(t, models.RoleHOD, grants.revokedRole)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("duplicate rejected", func(t *testing.T) {
		users := &stubUserStore{exists: true}
		svc, _ := newTestAuthService(users, &stubFacultyStore{}, &stubRoleGrantStore{}, &stubResolver{})

		_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
			Username: "registrar", Email: "registrar@sahyadri.edu.in", Password: "password123", UserType: "admin",
		})
		assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		users := &stubUserStore{}
		svc, _ := newTestAuthService(users, &stubFacultyStore{}, &stubRoleGrantStore{}, &stubResolver{})

		user, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
			Username: "newuser", Email: "new@sahyadri.edu.in", Password: "password123", UserType: "student",
		})
		require.NoError(t, err)
		assert.NotEqual(t, "password123", user.Password)
		assert.True(t, auth.CheckPassword(user.Password, "password123"))
		assert.True(t, user.IsActive)
	})
}

func TestVerify_FacultyWithLinkedUser(t *testing.T) {
	facultyID := int64(9)
	faculties := &stubFacultyStore{
		faculty: &models.Faculty{
			ID: 9, FirstName: "Jane", LastName: "Mathew",
			OfficialEmail: "jane@sahyadri.edu.in", IsActive: true,
		},
	}
	users := &stubUserStore{
		linkedUser: &models.User{ID: 5, Username: "jane", FacultyID: &facultyID, IsActive: true},
	}
	resolver := &stubResolver{
		roles: []models.RoleAssignment{
			{Role: models.RoleFaculty},
			{Role: models.RoleHOD, DepartmentID: ptrInt64(3)},
		},
	}
	svc, _ := newTestAuthService(users, faculties, &stubRoleGrantStore{}, resolver)

	claims := &auth.Claims{UserID: 9, Username: "jane@sahyadri.edu.in", UserType: "faculty", FacultyID: &facultyID}
	resp, err := svc.Verify(context.Background(), claims)
	require.NoError(t, err)
	assert.Len(t, resp.User.Roles, 2)
	assert.Empty(t, resp.Token)
}

func TestVerify_InactiveUser(t *testing.T) {
	users := &stubUserStore{
		user: &models.User{ID: 5, Username: "registrar", IsActive: false},
	}
	svc, _ := newTestAuthService(users, &stubFacultyStore{}, &stubRoleGrantStore{}, &stubResolver{})

	_, err := svc.Verify(context.Background(), &auth.Claims{UserID: 5, Username: "registrar", UserType: "admin"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

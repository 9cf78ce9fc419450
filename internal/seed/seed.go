package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/app/repositories"
	"github.com/sahyadri/portal/internal/pkg/apperrors"
	"github.com/sahyadri/portal/internal/pkg/auth"
)

const defaultAdminUsername = "admin"

// CreateDefaultData seeds the default admin account and the base departments
// when the tables are empty. Reruns are no-ops.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	departmentRepo := repositories.NewDepartmentRepository(dbPool)

	var finalErr error

	if err := seedAdmin(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedDepartments(ctx, departmentRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, userRepo *repositories.UserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.UsernameOrEmailExists(ctx, defaultAdminUsername, "admin@sahyadri.edu.in")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	password := os.Getenv("ADMIN_INITIAL_PASSWORD")
	if password == "" {
		password = "admin12345"
		lgr.Warn().Msg("ADMIN_INITIAL_PASSWORD not set, seeding admin with the default password")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: defaultAdminUsername,
		Email:    "admin@sahyadri.edu.in",
		Password: hashed,
		UserType: models.UserTypeAdmin,
		IsActive: true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Int64("userId", admin.ID).Msg("Default admin account created")
	return nil
}

func seedDepartments(ctx context.Context, departmentRepo *repositories.DepartmentRepository, lgr zerolog.Logger) error {
	existing, err := departmentRepo.GetAll(ctx, true)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []models.Department{
		{Name: "Computer Science and Engineering", Code: "CSE", IsActive: true},
		{Name: "Electronics and Communication Engineering", Code: "ECE", IsActive: true},
		{Name: "Mechanical Engineering", Code: "ME", IsActive: true},
		{Name: "Master of Computer Applications", Code: "MCA", IsActive: true},
	}

	var finalErr error
	for i := range defaults {
		dept := defaults[i]
		if err := departmentRepo.Create(ctx, &dept); err != nil {
			if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("code", dept.Code).Msg("Failed to seed department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("count", len(defaults)).Msg("Base departments created")
	}
	return finalErr
}

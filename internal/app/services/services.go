package services

import (
	"github.com/rs/zerolog"
	"github.com/sahyadri/portal/internal/app/repositories"
	"github.com/sahyadri/portal/internal/pkg/auth"
	"github.com/sahyadri/portal/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	RoleService       *RoleService
	DepartmentService *DepartmentService
	FacultyService    *FacultyService
	ProgramService    *ProgramService
	AppraisalService  *AppraisalService
	SurveyService     *SurveyService
	FileService       *FileService
}

// NewServices wires all services onto the repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *Services {
	roleService := NewRoleService(repos.RoleRepository, repos.DepartmentRepository, logger)

	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.FacultyRepository,
			repos.RoleRepository,
			roleService,
			jwtService,
			logger,
		),
		RoleService:       roleService,
		DepartmentService: NewDepartmentService(repos.DepartmentRepository, repos.ProgramRepository, repos.FacultyRepository, logger),
		FacultyService:    NewFacultyService(repos.FacultyRepository, repos.DepartmentRepository, logger),
		ProgramService:    NewProgramService(repos.ProgramRepository, repos.DepartmentRepository, logger),
		AppraisalService:  NewAppraisalService(repos.AppraisalRepository, repos.FacultyRepository, logger),
		SurveyService:     NewSurveyService(repos.SurveyRepository, repos.ProgramRepository, logger),
		FileService:       NewFileService(repos.FileRepository, storage, logger),
	}
}

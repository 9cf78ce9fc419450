package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	FacultyRepository    *FacultyRepository
	DepartmentRepository *DepartmentRepository
	RoleRepository       *RoleRepository
	ProgramRepository    *ProgramRepository
	AppraisalRepository  *AppraisalRepository
	SurveyRepository     *SurveyRepository
	FileRepository       *FileRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		RoleRepository:       NewRoleRepository(db),
		ProgramRepository:    NewProgramRepository(db),
		AppraisalRepository:  NewAppraisalRepository(db),
		SurveyRepository:     NewSurveyRepository(db),
		FileRepository:       NewFileRepository(db),
	}
}

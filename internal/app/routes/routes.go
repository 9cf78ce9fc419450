package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sahyadri/portal/internal/app/controllers"
	"github.com/sahyadri/portal/internal/app/models"
	"github.com/sahyadri/portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", ctrls.HealthController.Health)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrls.AuthController.Login)
		auth.POST("/logout-no-auth", ctrls.AuthController.LogoutNoAuth)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.Authenticate())

	authAuthed := authenticated.Group("/auth")
	{
		authAuthed.POST("/verify", ctrls.AuthController.Verify)
		authAuthed.POST("/logout", ctrls.AuthController.Logout)
		authAuthed.GET("/roles/:userId", ctrls.AuthController.GetUserRoles)

		authAdmin := authAuthed.Group("")
		authAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			authAdmin.POST("/create-user", ctrls.AuthController.CreateUser)
			authAdmin.POST("/assign-role", ctrls.AuthController.AssignRole)
			authAdmin.POST("/revoke-role", ctrls.AuthController.RevokeRole)
		}
	}

	departments := authenticated.Group("/departments")
	{
		departments.GET("", ctrls.DepartmentController.ListDepartments)
		departments.GET("/:id", ctrls.DepartmentController.GetDepartment)

		departmentsAdmin := departments.Group("")
		departmentsAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			departmentsAdmin.POST("", ctrls.DepartmentController.CreateDepartment)
			departmentsAdmin.PUT("/:id", ctrls.DepartmentController.UpdateDepartment)
			departmentsAdmin.DELETE("/:id", ctrls.DepartmentController.DeleteDepartment)
		}
	}

	faculties := authenticated.Group("/faculties")
	{
		faculties.GET("", ctrls.FacultyController.ListFaculties)
		faculties.GET("/:id", ctrls.FacultyController.GetFaculty)

		facultiesAdmin := faculties.Group("")
		facultiesAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			facultiesAdmin.POST("", ctrls.FacultyController.CreateFaculty)
			facultiesAdmin.PUT("/:id", ctrls.FacultyController.UpdateFaculty)
			facultiesAdmin.DELETE("/:id", ctrls.FacultyController.DeleteFaculty)
		}
	}

	programs := authenticated.Group("/programs")
	{
		programs.GET("", ctrls.ProgramController.ListPrograms)
		programs.GET("/:id", ctrls.ProgramController.GetProgram)

		programsAdmin := programs.Group("")
		programsAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			programsAdmin.POST("", ctrls.ProgramController.CreateProgram)
			programsAdmin.PUT("/:id", ctrls.ProgramController.UpdateProgram)
			programsAdmin.DELETE("/:id", ctrls.ProgramController.DeleteProgram)
		}
	}

	appraisals := authenticated.Group("/appraisals")
	{
		appraisals.GET("", ctrls.AppraisalController.ListAppraisals)
		appraisals.GET("/:id", ctrls.AppraisalController.GetAppraisal)
		appraisals.POST("", ctrls.AppraisalController.CreateAppraisal)
		appraisals.PUT("/:id", ctrls.AppraisalController.UpdateAppraisal)
		appraisals.POST("/:id/submit", ctrls.AppraisalController.SubmitAppraisal)

		appraisalsReview := appraisals.Group("")
		appraisalsReview.Use(authMiddleware.RequireRole(models.RoleHOD, models.RoleAdmin, models.RolePrincipal))
		{
			appraisalsReview.POST("/:id/review", ctrls.AppraisalController.ReviewAppraisal)
		}
	}

	surveys := authenticated.Group("/surveys")
	{
		surveys.GET("", ctrls.SurveyController.ListSurveys)
		surveys.GET("/:id", ctrls.SurveyController.GetSurvey)

		surveysAdmin := surveys.Group("")
		surveysAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			surveysAdmin.POST("", ctrls.SurveyController.CreateSurvey)
			surveysAdmin.PUT("/:id", ctrls.SurveyController.UpdateSurvey)
			surveysAdmin.POST("/:id/status", ctrls.SurveyController.ChangeSurveyStatus)
			surveysAdmin.DELETE("/:id", ctrls.SurveyController.DeleteSurvey)
		}
	}

	files := authenticated.Group("/files")
	{
		files.POST("", ctrls.FileController.UploadFile)
		files.GET("", ctrls.FileController.ListFiles)
		files.GET("/:id", ctrls.FileController.GetFile)
		files.DELETE("/:id", ctrls.FileController.DeleteFile)
	}
}

package models

// UserType defines the account type stored on the users table
type UserType string

const (
	UserTypeAdmin   UserType = "admin"
	UserTypeFaculty UserType = "faculty"
	UserTypeStudent UserType = "student"
)

// Role names stored in the user_roles table
const (
	RoleFaculty   = "faculty"
	RoleHOD       = "hod"
	RoleAdmin     = "admin"
	RolePrincipal = "principal"
)

// KnownRoles lists every role name the assign endpoint accepts.
var KnownRoles = []string{RoleFaculty, RoleHOD, RoleAdmin, RolePrincipal}

// AppraisalStatus defines the lifecycle state of an appraisal
type AppraisalStatus string

const (
	AppraisalDraft     AppraisalStatus = "DRAFT"
	AppraisalSubmitted AppraisalStatus = "SUBMITTED"
	AppraisalReviewed  AppraisalStatus = "REVIEWED"
)

// SurveyStatus defines the lifecycle state of a feedback survey
type SurveyStatus string

const (
	SurveyDraft  SurveyStatus = "DRAFT"
	SurveyOpen   SurveyStatus = "OPEN"
	SurveyClosed SurveyStatus = "CLOSED"
)

package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	AuthModule         Module = "AUTH"
	CompanyModule      Module = "COMPANY"
	PositionModule     Module = "POSITION"
	ChallengeModule    Module = "CHALLENGE"
	QuestionModule     Module = "QUESTION"
	SubmissionModule   Module = "SUBMISSION"
	ResumeReviewModule Module = "RESUME_REVIEW"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ReviewPermission Permission = "REVIEW"
	SubmitPermission Permission = "SUBMIT"
	ExportPermission Permission = "EXPORT"
)

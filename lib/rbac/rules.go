package rbac

import (
	"skill-hire-backend/models"
)

var (
	RecruiterRoleSet   = []models.UserRole{models.RecruiterRole}
	IntervieweeRoleSet = []models.UserRole{models.IntervieweeRole}
	AllRoles           = []models.UserRole{models.RecruiterRole, models.IntervieweeRole}
)

func (i *impl) initRules() {
	i.auth()
	i.company()
	i.position()
	i.challenge()
	i.question()
	i.submission()
	i.resumeReview()
}

func (i *impl) auth() {
	i.mustRegister(models.AuthModule, models.ViewPermission, AllRoles, "/auth/me [get]")
}

func (i *impl) company() {
	// VIEW
	i.mustRegister(models.CompanyModule, models.ViewPermission, RecruiterRoleSet, "/recruiter/company [get]")
	i.mustRegister(models.CompanyModule, models.ViewPermission, RecruiterRoleSet, "/recruiter/companies [get]")
	i.mustRegister(models.CompanyModule, models.ViewPermission, AllRoles, "/recruiter/companies/{id} [get]")
	// CREATE
	i.mustRegister(models.CompanyModule, models.CreatePermission, RecruiterRoleSet, "/recruiter/company [post]")
	// EDIT, ownership is checked by the handler
	i.mustRegister(models.CompanyModule, models.EditPermission, RecruiterRoleSet, "/recruiter/companies/{id} [put]")
}

func (i *impl) position() {
	// VIEW
	i.mustRegister(models.PositionModule, models.ViewPermission, RecruiterRoleSet, "/recruiter/position [get]")
	i.mustRegister(models.PositionModule, models.ViewPermission, RecruiterRoleSet, "/recruiter/positions [get]")
	i.mustRegister(models.PositionModule, models.ViewPermission, AllRoles, "/recruiter/positions/{id} [get]")
	i.mustRegister(models.PositionModule, models.ViewPermission, IntervieweeRoleSet, "/interviewee/positions [get]")
	// CREATE
	i.mustRegister(models.PositionModule, models.CreatePermission, RecruiterRoleSet, "/recruiter/position [post]")
}

func (i *impl) challenge() {
	// VIEW
	i.mustRegister(models.ChallengeModule, models.ViewPermission, RecruiterRoleSet, "/recruiter/challenges [get]")
	i.mustRegister(models.ChallengeModule, models.ViewPermission, AllRoles, "/recruiter/challenges/{id} [get]")
	i.mustRegister(models.ChallengeModule, models.ViewPermission, IntervieweeRoleSet, "/interviewee/challenge/{id} [get]")
	// CREATE
	i.mustRegister(models.ChallengeModule, models.CreatePermission, RecruiterRoleSet, "/recruiter/challenge [post]")
}

func (i *impl) question() {
	i.mustRegister(models.QuestionModule, models.ViewPermission, RecruiterRoleSet, "/recruiter/questions [get]")
	i.mustRegister(models.QuestionModule, models.CreatePermission, RecruiterRoleSet, "/recruiter/question [post]")
	i.mustRegister(models.QuestionModule, models.CreatePermission, RecruiterRoleSet, "/recruiter/questions/bulk [post]")
}

func (i *impl) submission() {
	// recruiter side
	i.mustRegister(models.SubmissionModule, models.ViewPermission, RecruiterRoleSet, "/recruiter/submissions [get]")
	i.mustRegister(models.SubmissionModule, models.ViewPermission, RecruiterRoleSet, "/recruiter/submission/{id}/history [get]")
	i.mustRegister(models.SubmissionModule, models.ExportPermission, RecruiterRoleSet, "/recruiter/submissions/export [get]")
	i.mustRegister(models.SubmissionModule, models.ReviewPermission, RecruiterRoleSet, "/recruiter/submission/{id} [put]")
	i.mustRegister(models.SubmissionModule, models.ReviewPermission, RecruiterRoleSet, "/recruiter/submission/{id} [patch]")
	// interviewee side
	i.mustRegister(models.SubmissionModule, models.SubmitPermission, IntervieweeRoleSet, "/interviewee/submit [post]")
	i.mustRegister(models.SubmissionModule, models.ViewPermission, IntervieweeRoleSet, "/interviewee/submissions [get]")
	i.mustRegister(models.SubmissionModule, models.ViewPermission, IntervieweeRoleSet, "/interviewee/submission/{challengeId} [get]")
	i.mustRegister(models.SubmissionModule, models.ViewPermission, IntervieweeRoleSet, "/interviewee/results [get]")
	i.mustRegister(models.SubmissionModule, models.ExportPermission, IntervieweeRoleSet, "/interviewee/results/export [get]")
}

func (i *impl) resumeReview() {
	i.mustRegister(models.ResumeReviewModule, models.CreatePermission, RecruiterRoleSet, "/recruiter/resume-review [post]")
	i.mustRegister(models.ResumeReviewModule, models.ViewPermission, RecruiterRoleSet, "/recruiter/resume-reviews [get]")
	i.mustRegister(models.ResumeReviewModule, models.ViewPermission, IntervieweeRoleSet, "/interviewee/resume-reviews [get]")
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/initializers"
	"skill-hire-backend/middleware"
)

func InitApiRouters(api fiber.Router, s *initializers.Services) {
	secured := []fiber.Handler{
		middleware.AuthorizationRequired(s.Tokens.Secret()),
		middleware.RbacMiddleware(s.Rbac),
	}

	InitAuthApiRouters(api, s, secured...)

	recruiter := api.Group("recruiter", secured...)
	InitCompanyApiRouters(recruiter, s)
	InitPositionApiRouters(recruiter, s)
	InitChallengeApiRouters(recruiter, s)
	InitQuestionApiRouters(recruiter, s)
	InitSubmissionApiRouters(recruiter, s)
	InitResumeReviewApiRouters(recruiter, s)

	interviewee := api.Group("interviewee", secured...)
	InitIntervieweeApiRouters(interviewee, s)
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/controllers"
	"skill-hire-backend/initializers"
	resumereviewhandler "skill-hire-backend/lib/resume-review"
	"skill-hire-backend/middleware"
	reviewapimodels "skill-hire-backend/models/api/review"
)

type resumeReviewApiController struct {
	controllers.BaseAPIController
	review resumereviewhandler.Provider
}

func InitResumeReviewApiRouters(recruiter fiber.Router, s *initializers.Services) {
	controller := resumeReviewApiController{review: s.ResumeReview}
	recruiter.Post("resume-review", controller.create)
	recruiter.Get("resume-reviews", controller.list)
}

// @Summary Review a candidate resume
// @Tags Resume review
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body		reviewapimodels.ResumeReviewData	true	"request body"
// @Success 200 {object} reviewapimodels.ResumeReviewView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/resume-review [post]
func (c *resumeReviewApiController) create(ctx *fiber.Ctx) error {
	var payload reviewapimodels.ResumeReviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.review.Create(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create resume review")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Resume reviews written by the current recruiter
// @Tags Resume review
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} reviewapimodels.ResumeReviewView
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/resume-reviews [get]
func (c *resumeReviewApiController) list(ctx *fiber.Ctx) error {
	resp, err := c.review.ListByReviewer(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch resume reviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

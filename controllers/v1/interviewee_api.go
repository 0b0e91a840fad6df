package apiv1

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/controllers"
	"skill-hire-backend/initializers"
	challengehandler "skill-hire-backend/lib/challenge"
	pdfexport "skill-hire-backend/lib/export/pdf"
	positionhandler "skill-hire-backend/lib/position"
	resumereviewhandler "skill-hire-backend/lib/resume-review"
	submissionhandler "skill-hire-backend/lib/submission"
	"skill-hire-backend/middleware"
	submissionapimodels "skill-hire-backend/models/api/submission"
)

type intervieweeApiController struct {
	controllers.BaseAPIController
	position   positionhandler.Provider
	challenge  challengehandler.Provider
	submission submissionhandler.Provider
	review     resumereviewhandler.Provider
	pdfExport  pdfexport.Provider
}

func InitIntervieweeApiRouters(interviewee fiber.Router, s *initializers.Services) {
	controller := intervieweeApiController{
		position:   s.Position,
		challenge:  s.Challenge,
		submission: s.Submission,
		review:     s.ResumeReview,
		pdfExport:  s.PdfExport,
	}
	interviewee.Get("positions", controller.positions)
	interviewee.Get("challenge/:id", controller.challengeForAttempt)
	interviewee.Post("submit", controller.submit)
	interviewee.Get("submissions", controller.submissions)
	interviewee.Get("submission/:challengeId", controller.latestSubmission)
	interviewee.Get("results", controller.results)
	interviewee.Get("results/export", controller.exportResults)
	interviewee.Get("resume-reviews", controller.resumeReviews)
}

// @Summary Open positions
// @Tags Interviewee
// @Description Every position with its company and challenges
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} hiringapimodels.PositionView
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/interviewee/positions [get]
func (c *intervieweeApiController) positions(ctx *fiber.Ctx) error {
	resp, err := c.position.ListOpen(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch positions")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Challenge to attempt
// @Tags Interviewee
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				true    "challenge ID"
// @Success 200 {object} hiringapimodels.ChallengeView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/interviewee/challenge/{id} [get]
func (c *intervieweeApiController) challengeForAttempt(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx, "id")
	if err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.challenge.GetForAttempt(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch challenge")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Submit challenge answers
// @Tags Interviewee
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body		submissionapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} submissionapimodels.SubmissionView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/interviewee/submit [post]
func (c *intervieweeApiController) submit(ctx *fiber.Ctx) error {
	var payload submissionapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.submission.Create(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "submission failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Own submissions
// @Tags Interviewee
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} submissionapimodels.SubmissionView
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/interviewee/submissions [get]
func (c *intervieweeApiController) submissions(ctx *fiber.Ctx) error {
	resp, err := c.submission.ListForInterviewee(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch submissions")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Latest own submission for a challenge
// @Tags Interviewee
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   challengeId     		path    	string  				true    "challenge ID"
// @Success 200 {object} submissionapimodels.SubmissionView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/interviewee/submission/{challengeId} [get]
func (c *intervieweeApiController) latestSubmission(ctx *fiber.Ctx) error {
	challengeID, err := c.GetID(ctx, "challengeId")
	if err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.submission.Latest(ctx.UserContext(), middleware.GetUserID(ctx), challengeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch submission")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Own results
// @Tags Interviewee
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} submissionapimodels.ResultView
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/interviewee/results [get]
func (c *intervieweeApiController) results(ctx *fiber.Ctx) error {
	resp, err := c.submission.Results(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch results")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Export own results to PDF
// @Tags Interviewee
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/interviewee/results/export [get]
func (c *intervieweeApiController) exportResults(ctx *fiber.Ctx) error {
	logger := c.GetLogger(ctx)
	identity := middleware.GetIdentity(ctx)
	list, err := c.submission.Results(ctx.UserContext(), identity.UserID)
	if err != nil {
		return c.SendError(ctx, logger, err, "failed to fetch results")
	}
	data, err := c.pdfExport.ExportResults(identity.Name, list)
	if err != nil {
		return c.SendError(ctx, logger, err, "failed to export results")
	}
	fileName := fmt.Sprintf("results-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(bytes.NewReader(data), len(data))
}

// @Summary Resume reviews about the current interviewee
// @Tags Interviewee
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} reviewapimodels.ResumeReviewView
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/interviewee/resume-reviews [get]
func (c *intervieweeApiController) resumeReviews(ctx *fiber.Ctx) error {
	resp, err := c.review.ListForInterviewee(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch resume reviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/controllers"
	"skill-hire-backend/initializers"
	xlsexport "skill-hire-backend/lib/export/xls"
	submissionhandler "skill-hire-backend/lib/submission"
	"skill-hire-backend/middleware"
	submissionapimodels "skill-hire-backend/models/api/submission"
)

type submissionApiController struct {
	controllers.BaseAPIController
	submission submissionhandler.Provider
	xlsExport  xlsexport.Provider
}

func InitSubmissionApiRouters(recruiter fiber.Router, s *initializers.Services) {
	controller := submissionApiController{
		submission: s.Submission,
		xlsExport:  s.XlsExport,
	}
	recruiter.Get("submissions", controller.list)
	recruiter.Get("submissions/export", controller.export)
	recruiter.Put("submission/:id", controller.setStatus)
	recruiter.Patch("submission/:id", controller.setStatus)
	recruiter.Get("submission/:id/history", controller.history)
}

// @Summary Submissions to the current recruiter's challenges
// @Tags Submission
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} submissionapimodels.SubmissionView
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/submissions [get]
func (c *submissionApiController) list(ctx *fiber.Ctx) error {
	resp, err := c.submission.ListForRecruiter(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch submissions")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Export submissions to Excel
// @Tags Submission
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/submissions/export [get]
func (c *submissionApiController) export(ctx *fiber.Ctx) error {
	logger := c.GetLogger(ctx)
	list, err := c.submission.ListForRecruiter(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, logger, err, "failed to fetch submissions")
	}
	data, err := c.xlsExport.ExportSubmissionList(list)
	if err != nil {
		return c.SendError(ctx, logger, err, "failed to export submissions")
	}
	fileName := fmt.Sprintf("submissions-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Review a submission
// @Tags Submission
// @Description Sets the status to selected, rejected or on_hold, feedback is optional
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				true    "submission ID"
// @Param	body	body		submissionapimodels.StatusUpdateRequest	true	"request body"
// @Success 200 {object} submissionapimodels.SubmissionView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/submission/{id} [put]
func (c *submissionApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx, "id")
	if err != nil {
		return c.SendValidationError(ctx, err)
	}
	var payload submissionapimodels.StatusUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.submission.SetStatus(ctx.UserContext(), middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update submission")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Status history of a submission
// @Tags Submission
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				true    "submission ID"
// @Success 200 {array} submissionapimodels.HistoryView
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/submission/{id}/history [get]
func (c *submissionApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx, "id")
	if err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.submission.History(ctx.UserContext(), middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch submission history")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/controllers"
	"skill-hire-backend/initializers"
	questionhandler "skill-hire-backend/lib/question"
	"skill-hire-backend/middleware"
	hiringapimodels "skill-hire-backend/models/api/hiring"
)

type questionApiController struct {
	controllers.BaseAPIController
	question questionhandler.Provider
}

func InitQuestionApiRouters(recruiter fiber.Router, s *initializers.Services) {
	controller := questionApiController{question: s.Question}
	recruiter.Post("question", controller.create)
	recruiter.Post("questions/bulk", controller.createBulk)
	recruiter.Get("questions", controller.list)
}

// @Summary Add a question to a challenge
// @Tags Question
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body		hiringapimodels.QuestionData	true	"request body"
// @Success 200 {object} hiringapimodels.QuestionView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/question [post]
func (c *questionApiController) create(ctx *fiber.Ctx) error {
	var payload hiringapimodels.QuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.question.Create(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create question")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Add several questions at once
// @Tags Question
// @Description All or nothing, questions keep the order of the request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body		hiringapimodels.BulkQuestionsRequest	true	"request body"
// @Success 200 {object} hiringapimodels.BulkQuestionsResponse
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/questions/bulk [post]
func (c *questionApiController) createBulk(ctx *fiber.Ctx) error {
	var payload hiringapimodels.BulkQuestionsRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.question.CreateBulk(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "server error during bulk insert")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Questions of the current recruiter
// @Tags Question
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} hiringapimodels.QuestionView
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/questions [get]
func (c *questionApiController) list(ctx *fiber.Ctx) error {
	resp, err := c.question.ListOwned(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch questions")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

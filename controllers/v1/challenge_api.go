package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/controllers"
	"skill-hire-backend/initializers"
	challengehandler "skill-hire-backend/lib/challenge"
	"skill-hire-backend/middleware"
	hiringapimodels "skill-hire-backend/models/api/hiring"
)

type challengeApiController struct {
	controllers.BaseAPIController
	challenge challengehandler.Provider
}

func InitChallengeApiRouters(recruiter fiber.Router, s *initializers.Services) {
	controller := challengeApiController{challenge: s.Challenge}
	recruiter.Post("challenge", controller.create)
	recruiter.Get("challenges", controller.list)
	recruiter.Get("challenges/:id", controller.get)
}

// @Summary Create a challenge
// @Tags Challenge
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body		hiringapimodels.ChallengeData	true	"request body"
// @Success 200 {object} hiringapimodels.ChallengeView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/challenge [post]
func (c *challengeApiController) create(ctx *fiber.Ctx) error {
	var payload hiringapimodels.ChallengeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.challenge.Create(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create challenge")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Challenges of the current recruiter
// @Tags Challenge
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} hiringapimodels.ChallengeView
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/challenges [get]
func (c *challengeApiController) list(ctx *fiber.Ctx) error {
	resp, err := c.challenge.ListOwned(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch challenges")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Challenge by id
// @Tags Challenge
// @Description Returns the challenge with its position and questions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				true    "challenge ID"
// @Success 200 {object} hiringapimodels.ChallengeView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/challenges/{id} [get]
func (c *challengeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx, "id")
	if err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.challenge.Get(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch challenge")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

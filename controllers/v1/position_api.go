package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/controllers"
	"skill-hire-backend/initializers"
	positionhandler "skill-hire-backend/lib/position"
	"skill-hire-backend/middleware"
	hiringapimodels "skill-hire-backend/models/api/hiring"
)

type positionApiController struct {
	controllers.BaseAPIController
	position positionhandler.Provider
}

func InitPositionApiRouters(recruiter fiber.Router, s *initializers.Services) {
	controller := positionApiController{position: s.Position}
	recruiter.Post("position", controller.create)
	recruiter.Get("position", controller.list)
	recruiter.Get("positions", controller.list)
	recruiter.Get("positions/:id", controller.get)
}

// @Summary Create a position
// @Tags Position
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body		hiringapimodels.PositionData	true	"request body"
// @Success 200 {object} hiringapimodels.PositionView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/position [post]
func (c *positionApiController) create(ctx *fiber.Ctx) error {
	var payload hiringapimodels.PositionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.position.Create(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create position")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Positions of the current recruiter
// @Tags Position
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} hiringapimodels.PositionView
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/positions [get]
func (c *positionApiController) list(ctx *fiber.Ctx) error {
	resp, err := c.position.ListOwned(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch positions")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Position by id
// @Tags Position
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				true    "position ID"
// @Success 200 {object} hiringapimodels.PositionView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/positions/{id} [get]
func (c *positionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx, "id")
	if err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.position.Get(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch position")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/controllers"
	"skill-hire-backend/initializers"
	authhandler "skill-hire-backend/lib/auth"
	"skill-hire-backend/middleware"
	apimodels "skill-hire-backend/models/api"
	authapimodels "skill-hire-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
	auth authhandler.Provider
}

func InitAuthApiRouters(api fiber.Router, s *initializers.Services, secured ...fiber.Handler) {
	controller := authApiController{auth: s.Auth}
	api.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		router.Get("me", append(secured, controller.me)...)
	})
}

// @Summary Register a user
// @Tags Auth
// @Description Register a recruiter or an interviewee
// @Param	body	body		authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.MessageResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	if err := c.auth.Register(ctx.UserContext(), payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "registration failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Registered successfully"))
}

// @Summary Log in
// @Tags Auth
// @Description Exchange credentials for a signed token
// @Param	body	body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} authapimodels.TokenResponse
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.auth.Login(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "login failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Current user
// @Tags Auth
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} authapimodels.MeView
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := c.auth.Me(ctx.UserContext(), middleware.GetIdentity(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load user")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

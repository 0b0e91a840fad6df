package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/controllers"
	"skill-hire-backend/initializers"
	companyhandler "skill-hire-backend/lib/company"
	"skill-hire-backend/middleware"
	hiringapimodels "skill-hire-backend/models/api/hiring"
)

type companyApiController struct {
	controllers.BaseAPIController
	company companyhandler.Provider
}

func InitCompanyApiRouters(recruiter fiber.Router, s *initializers.Services) {
	controller := companyApiController{company: s.Company}
	recruiter.Post("company", controller.create)
	recruiter.Get("company", controller.list)
	recruiter.Get("companies", controller.list)
	recruiter.Get("companies/:id", controller.get)
	recruiter.Put("companies/:id", controller.update)
}

// @Summary Create a company
// @Tags Company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body		hiringapimodels.CompanyData	true	"request body"
// @Success 200 {object} hiringapimodels.CompanyView
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/company [post]
func (c *companyApiController) create(ctx *fiber.Ctx) error {
	var payload hiringapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.company.Create(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create company")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Companies of the current recruiter
// @Tags Company
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} hiringapimodels.CompanyView
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/companies [get]
func (c *companyApiController) list(ctx *fiber.Ctx) error {
	resp, err := c.company.ListOwned(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch companies")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Company by id
// @Tags Company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				true    "company ID"
// @Success 200 {object} hiringapimodels.CompanyView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/companies/{id} [get]
func (c *companyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx, "id")
	if err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.company.Get(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to fetch company")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Overwrite a company
// @Tags Company
// @Description Only the owning recruiter may update
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				true    "company ID"
// @Param	body	body		hiringapimodels.CompanyData	true	"request body"
// @Success 200 {object} hiringapimodels.CompanyView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/companies/{id} [put]
func (c *companyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx, "id")
	if err != nil {
		return c.SendValidationError(ctx, err)
	}
	var payload hiringapimodels.CompanyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := c.company.Update(ctx.UserContext(), middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update company")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

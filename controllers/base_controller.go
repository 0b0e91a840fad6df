package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/middleware"
	apimodels "skill-hire-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Info("failed to parse request body")
		return apperrors.New(apperrors.ErrValidation, "failed to read request body")
	}
	return nil
}

// GetID returns the path param, it has to be a uuid.
func (c *BaseAPIController) GetID(ctx *fiber.Ctx, name string) (string, error) {
	id := ctx.Params(name)
	if id == "" {
		return "", apperrors.Newf(apperrors.ErrValidation, "%s is required", name)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.Newf(apperrors.ErrValidation, "invalid %s", name)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path()).
		WithField("method", ctx.Method())
	if requestID, ok := ctx.Locals(requestid.ConfigDefault.ContextKey).(string); ok && requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	if userID := middleware.GetUserID(ctx); userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

// SendError renders err as {"status":"fail"}. Server errors are logged and
// answered with hMsg only.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	status := apperrors.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.WithError(err).Error(hMsg)
		return ctx.Status(status).JSON(apimodels.NewError(hMsg))
	}
	logger.WithError(err).Info(hMsg)
	return ctx.Status(status).JSON(apimodels.NewError(apperrors.Message(err)))
}

// SendValidationError answers 400 for errors returned by Validate.
func (c *BaseAPIController) SendValidationError(ctx *fiber.Ctx, err error) error {
	if apperrors.HTTPStatus(err) == fiber.StatusInternalServerError {
		err = apperrors.New(apperrors.ErrValidation, err.Error())
	}
	return ctx.Status(apperrors.HTTPStatus(err)).JSON(apimodels.NewError(apperrors.Message(err)))
}

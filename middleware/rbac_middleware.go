package middleware

import (
	"github.com/gofiber/fiber/v2"
	"skill-hire-backend/lib/rbac"
	apimodels "skill-hire-backend/models/api"
)

// RbacMiddleware runs after AuthorizationRequired. Routes without a rule are closed.
func RbacMiddleware(rbacProvider rbac.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("invalid token"))
		}
		userRole := GetUserRole(ctx)
		if !userRole.IsValid() {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("invalid token"))
		}

		handler, found := rbacProvider.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found || !handler(userID, userRole, ctx.Path()) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("unauthorized"))
		}

		return ctx.Next()
	}
}

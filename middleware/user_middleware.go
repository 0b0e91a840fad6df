package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "skill-hire-backend/lib/utils/auth-utils"
	"skill-hire-backend/models"
)

func GetIdentity(ctx *fiber.Ctx) authutils.Identity {
	return authutils.IdentityFromClaims(authutils.GetClaims(ctx))
}

func GetUserID(ctx *fiber.Ctx) string {
	return GetIdentity(ctx).UserID
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return GetIdentity(ctx).Role
}

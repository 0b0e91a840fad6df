package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	apimodels "skill-hire-backend/models/api"
)

func AuthorizationRequired(secret []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    secret,
		},
		ErrorHandler: authErrorHandler,
	})
}

func authErrorHandler(ctx *fiber.Ctx, err error) error {
	message := "invalid token"
	switch {
	case errors.Is(err, jwtware.ErrJWTMissingOrMalformed) && ctx.Get(fiber.HeaderAuthorization) == "":
		message = "no token provided"
	case errors.Is(err, jwt.ErrTokenExpired):
		message = "token expired"
	}
	return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(message))
}

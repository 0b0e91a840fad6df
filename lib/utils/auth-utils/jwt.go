package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/models"
)

// Identity is what a verified token proves about its bearer.
type Identity struct {
	UserID string
	Name   string
	Role   models.UserRole
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *TokenIssuer) GetToken(userID, name string, role models.UserRole) (tokenString string, err error) {
	now := t.now()
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"role": string(role),
		"exp":  now.Add(t.ttl).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Authenticate verifies the token and, when requiredRole is not empty, the role it carries.
func (t *TokenIssuer) Authenticate(tokenString string, requiredRole models.UserRole) (Identity, error) {
	if tokenString == "" {
		return Identity{}, apperrors.New(apperrors.ErrUnauthenticated, "no token provided")
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, apperrors.New(apperrors.ErrUnauthenticated, "token expired")
		}
		return Identity{}, apperrors.New(apperrors.ErrUnauthenticated, "invalid token")
	}
	identity := IdentityFromClaims(claims)
	if identity.UserID == "" {
		return Identity{}, apperrors.New(apperrors.ErrUnauthenticated, "invalid token")
	}
	if requiredRole != "" && identity.Role != requiredRole {
		return Identity{}, apperrors.New(apperrors.ErrUnauthorized, "unauthorized")
	}
	return identity, nil
}

func (t *TokenIssuer) Secret() []byte {
	return t.secret
}

func IdentityFromClaims(claims jwt.MapClaims) Identity {
	identity := Identity{}
	if sub, ok := claims["sub"].(string); ok {
		identity.UserID = sub
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = models.UserRole(role)
	}
	return identity
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"skill-hire-backend/lib/rbac"
	authutils "skill-hire-backend/lib/utils/auth-utils"
	"skill-hire-backend/models"
	apimodels "skill-hire-backend/models/api"
)

const testSecret = "middleware-secret"

func newSecuredApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api", AuthorizationRequired([]byte(testSecret)), RbacMiddleware(rbac.NewHandler("/api")))
	api.Get("/recruiter/companies", func(ctx *fiber.Ctx) error {
		identity := GetIdentity(ctx)
		return ctx.SendString(identity.UserID + ":" + identity.Name + ":" + string(identity.Role))
	})
	api.Get("/recruiter/unlisted", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func send(t *testing.T, app *fiber.App, path, token string) (int, string) {
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func failMessage(t *testing.T, body string) string {
	var resp apimodels.Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Equal(t, "fail", resp.Status)
	return resp.Message
}

func TestAuthorizationRequired(t *testing.T) {
	app := newSecuredApp()
	tokens := authutils.NewTokenIssuer(testSecret, time.Hour)

	t.Run(`no token`, func(t *testing.T) {
		code, body := send(t, app, "/api/recruiter/companies", "")
		require.Equal(t, fiber.StatusUnauthorized, code)
		require.Equal(t, "no token provided", failMessage(t, body))
	})

	t.Run(`garbage token`, func(t *testing.T) {
		code, body := send(t, app, "/api/recruiter/companies", "not.a.jwt")
		require.Equal(t, fiber.StatusUnauthorized, code)
		require.Equal(t, "invalid token", failMessage(t, body))
	})

	t.Run(`foreign signature`, func(t *testing.T) {
		token, err := authutils.NewTokenIssuer("other", time.Hour).GetToken("u1", "Rita", models.RecruiterRole)
		require.NoError(t, err)
		code, body := send(t, app, "/api/recruiter/companies", token)
		require.Equal(t, fiber.StatusUnauthorized, code)
		require.Equal(t, "invalid token", failMessage(t, body))
	})

	t.Run(`expired token`, func(t *testing.T) {
		token, err := authutils.NewTokenIssuer(testSecret, -time.Minute).GetToken("u1", "Rita", models.RecruiterRole)
		require.NoError(t, err)
		code, body := send(t, app, "/api/recruiter/companies", token)
		require.Equal(t, fiber.StatusUnauthorized, code)
		require.Equal(t, "token expired", failMessage(t, body))
	})

	t.Run(`valid token carries the identity`, func(t *testing.T) {
		token, err := tokens.GetToken("u1", "Rita", models.RecruiterRole)
		require.NoError(t, err)
		code, body := send(t, app, "/api/recruiter/companies", token)
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "u1:Rita:recruiter", body)
	})
}

func TestRbacMiddleware(t *testing.T) {
	app := newSecuredApp()
	tokens := authutils.NewTokenIssuer(testSecret, time.Hour)

	t.Run(`wrong role`, func(t *testing.T) {
		token, err := tokens.GetToken("u2", "Ivan", models.IntervieweeRole)
		require.NoError(t, err)
		code, body := send(t, app, "/api/recruiter/companies", token)
		require.Equal(t, fiber.StatusForbidden, code)
		require.Equal(t, "unauthorized", failMessage(t, body))
	})

	t.Run(`route without a rule`, func(t *testing.T) {
		token, err := tokens.GetToken("u1", "Rita", models.RecruiterRole)
		require.NoError(t, err)
		code, _ := send(t, app, "/api/recruiter/unlisted", token)
		require.Equal(t, fiber.StatusForbidden, code)
	})

	t.Run(`unknown role`, func(t *testing.T) {
		token, err := tokens.GetToken("u3", "Root", models.UserRole("admin"))
		require.NoError(t, err)
		code, body := send(t, app, "/api/recruiter/companies", token)
		require.Equal(t, fiber.StatusUnauthorized, code)
		require.Equal(t, "invalid token", failMessage(t, body))
	})
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(16))
	app.Post("/echo", func(ctx *fiber.Ctx) error {
		return ctx.Send(ctx.Body())
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(fiber.MethodPost, "/echo", strings.NewReader(body))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		rec := httptest.NewRecorder()
		rec.Code = resp.StatusCode
		_, err = io.Copy(rec.Body, resp.Body)
		require.NoError(t, err)
		return rec
	}

	ok := post("small")
	require.Equal(t, fiber.StatusOK, ok.Code)
	require.Equal(t, "small", ok.Body.String())

	tooLarge := post(strings.Repeat("x", 17))
	require.Equal(t, fiber.StatusRequestEntityTooLarge, tooLarge.Code)
	require.Equal(t, "request body too large, maximum allowed: 16 bytes", failMessage(t, tooLarge.Body.String()))
}

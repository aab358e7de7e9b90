package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"venue-hiring-backend/config"
	authutils "venue-hiring-backend/lib/utils/auth-utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationRequired(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60

	app := fiber.New()
	app.Use(AuthorizationRequired())
	app.Get("/me", func(ctx *fiber.Ctx) error {
		user := GetCurrentUser(ctx)
		return ctx.SendString(user.ID + "|" + user.Email)
	})

	t.Run(`valid token`, func(t *testing.T) {
		token, err := authutils.GetToken("user-1", "pat@example.com")
		require.NoError(t, err)
		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "user-1|pat@example.com", string(body))
	})

	t.Run(`missing token`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetUserIDWithoutToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserID(ctx))
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Empty(t, string(body))
}

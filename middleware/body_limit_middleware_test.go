package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10, 100))
	handler := func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) }
	app.Post("/job_board", handler)
	app.Post("/job_board/logo/:org_id", handler)

	req := httptest.NewRequest(fiber.MethodPost, "/job_board", strings.NewReader(strings.Repeat("x", 50)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPost, "/job_board/logo/org-1", strings.NewReader(strings.Repeat("x", 50)))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

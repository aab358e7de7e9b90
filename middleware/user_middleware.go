package middleware

import (
	authutils "venue-hiring-backend/lib/utils/auth-utils"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser is the authenticated caller taken from the token claims.
type CurrentUser struct {
	ID    string
	Email string
}

func GetUserID(ctx *fiber.Ctx) string {
	return claimString(ctx, "sub")
}

func GetUserEmail(ctx *fiber.Ctx) string {
	return claimString(ctx, "email")
}

func GetCurrentUser(ctx *fiber.Ctx) CurrentUser {
	return CurrentUser{
		ID:    GetUserID(ctx),
		Email: GetUserEmail(ctx),
	}
}

func claimString(ctx *fiber.Ctx, name string) string {
	claims := authutils.GetClaims(ctx)
	if value, exist := claims[name]; exist {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

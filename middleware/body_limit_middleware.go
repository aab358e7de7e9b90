package middleware

import (
	"fmt"
	"strconv"
	"strings"
	apimodels "venue-hiring-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit rejects requests declaring a body larger than limit.
// Logo uploads are checked against uploadLimit instead.
func WithBodyLimit(limit, uploadLimit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		max := limit
		if strings.Contains(c.Path(), "/job_board/logo/") {
			max = uploadLimit
		}
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength != "" && contentLength != "0" {
			size, err := strconv.ParseInt(contentLength, 10, 64)
			if err == nil && size > max {
				return c.Status(fiber.StatusRequestEntityTooLarge).
					JSON(apimodels.NewError(fmt.Sprintf("request body too large, maximum allowed: %d bytes", max)))
			}
		}
		return c.Next()
	}
}

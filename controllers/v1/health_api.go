package apiv1

import (
	"venue-hiring-backend/controllers"
	"venue-hiring-backend/db"
	"venue-hiring-backend/lib/schema"
	apimodels "venue-hiring-backend/models/api"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type HealthStatus struct {
	Database bool            `json:"database"`
	Tables   map[string]bool `json:"tables"`
}

type healthApiController struct {
	controllers.BaseAPIController
}

func InitHealthApiRouters(app *fiber.App) {
	controller := healthApiController{}
	app.Get("health", controller.health)
}

// @Summary Health
// @Tags Health
// @Description Database connectivity and provisioned tables
// @Success 200 {object} apimodels.Response{data=HealthStatus}
// @Failure 503 {object} apimodels.Response{data=HealthStatus}
// @router /api/v1/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	status := HealthStatus{
		Database: db.PingDB() == nil,
		Tables:   map[string]bool{},
	}
	if status.Database && schema.Instance != nil {
		status.Tables = schema.Capabilities(schema.Instance, dbmodels.KnownTables...)
	}
	if !status.Database {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewErrorWithData("database is unavailable", status))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(status))
}

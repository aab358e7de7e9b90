package apiv1

import (
	"fmt"
	"time"
	"venue-hiring-backend/controllers"
	venuestaffhandler "venue-hiring-backend/lib/venue-staff"
	apimodels "venue-hiring-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type venueApiController struct {
	controllers.BaseAPIController
}

func InitVenueApiRouters(app *fiber.App) {
	controller := venueApiController{}
	app.Route("venue/:venue_id/workforce", func(router fiber.Router) {
		router.Get("", controller.workforce)
		router.Get("export", controller.export)
	})
}

// @Summary Workforce
// @Tags Venue
// @Description Staff, crew and contractors of the venue
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   venue_id          		path    string  				    	true         "venue ID"
// @Success 200 {object} apimodels.Response{data=workforceapimodels.Workforce}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/venue/{venue_id}/workforce [get]
func (c *venueApiController) workforce(ctx *fiber.Ctx) error {
	venueID, err := c.GetParam(ctx, "venue_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := venuestaffhandler.Instance.Workforce(venueID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("venue_id", venueID), err, "failed to load workforce")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Workforce export
// @Tags Venue
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   venue_id          		path    string  				    	true         "venue ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/venue/{venue_id}/workforce/export [get]
func (c *venueApiController) export(ctx *fiber.Ctx) error {
	venueID, err := c.GetParam(ctx, "venue_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := venuestaffhandler.Instance.ExportWorkforce(venueID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("venue_id", venueID), err, "failed to export workforce")
	}
	fileName := fmt.Sprintf("workforce_%s.xlsx", time.Now().Format("2006_01_02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Status(fiber.StatusOK).SendStream(buf, buf.Len())
}

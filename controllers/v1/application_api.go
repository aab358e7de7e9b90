package apiv1

import (
	"venue-hiring-backend/controllers"
	applicationhandler "venue-hiring-backend/lib/applications"
	hiringhandler "venue-hiring-backend/lib/hiring"
	apimodels "venue-hiring-backend/models/api"
	hiringapimodels "venue-hiring-backend/models/api/hiring"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application/:id", func(router fiber.Router) {
		router.Put("hire", controller.hire)
		router.Put("reject", controller.reject)
	})
}

// @Summary Hire
// @Tags Application
// @Description Accepts the application and creates the venue employment record
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 hiringapimodels.HireData	true	"request body"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.HireResult}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/application/{id}/hire [put]
func (c *applicationApiController) hire(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hiringapimodels.HireData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := hiringhandler.Instance.HireFromJobBoard(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("application_id", id), err, "failed to hire applicant")
	}
	if !result.Hired {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewErrorWithData("application can not be hired", result))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Reject
// @Tags Application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/reject [put]
func (c *applicationApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicationhandler.Instance.Reject(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("application_id", id), err, "failed to reject application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

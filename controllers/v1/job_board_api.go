package apiv1

import (
	"venue-hiring-backend/controllers"
	applicationhandler "venue-hiring-backend/lib/applications"
	filestorage "venue-hiring-backend/lib/file-storage"
	jobboardhandler "venue-hiring-backend/lib/job-board"
	"venue-hiring-backend/middleware"
	apimodels "venue-hiring-backend/models/api"
	applicationapimodels "venue-hiring-backend/models/api/application"
	jobboardapimodels "venue-hiring-backend/models/api/jobboard"

	"github.com/gofiber/fiber/v2"
)

type jobBoardApiController struct {
	controllers.BaseAPIController
}

func InitJobBoardApiRouters(app *fiber.App) {
	controller := jobBoardApiController{}
	app.Route("job_board", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get("organization/:org_id", controller.listByOrganization)
		router.Post("logo/:org_id", controller.uploadLogo)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("change_status", controller.changeStatus)
			idRoute.Post("apply", controller.apply)
			idRoute.Get("applications", controller.applications)
		})
	})
}

// @Summary Create
// @Tags Job board
// @Description Publishes a posting to the job board and the organization listing
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobboardapimodels.JobPostingData	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobboardhandler.PostingResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_board [post]
func (c *jobBoardApiController) create(ctx *fiber.Ctx) error {
	var payload jobboardapimodels.JobPostingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	result, err := jobboardhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create job posting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary List
// @Tags Job board
// @Description Published postings, newest urgent first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobboardapimodels.JobPostingFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobboardapimodels.JobPostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_board/list [post]
func (c *jobBoardApiController) list(ctx *fiber.Ctx) error {
	var payload jobboardapimodels.JobPostingFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, degraded, err := jobboardhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list job postings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount, degraded))
}

// @Summary Organization postings
// @Tags Job board
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   org_id          		path    string  				    	true         "organization ID"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobboardapimodels.JobPostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_board/organization/{org_id} [get]
func (c *jobBoardApiController) listByOrganization(ctx *fiber.Ctx) error {
	orgID, err := c.GetParam(ctx, "org_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, degraded, err := jobboardhandler.Instance.ListByOrganization(orgID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list organization postings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list)), degraded))
}

// @Summary Get by ID
// @Tags Job board
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobboardapimodels.JobPostingView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_board/{id} [get]
func (c *jobBoardApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := jobboardhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get job posting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Change status
// @Tags Job board
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 jobboardapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_board/{id}/change_status [put]
func (c *jobBoardApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobboardapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "invalid status")
	}
	if err = jobboardhandler.Instance.ChangeStatus(id, payload.Status); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change job posting status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload organization logo
// @Tags Job board
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   org_id          		path    string  				    	true         "organization ID"
// @Param   logo	formData	file	true	"logo image"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/job_board/logo/{org_id} [post]
func (c *jobBoardApiController) uploadLogo(ctx *fiber.Ctx) error {
	orgID, err := c.GetParam(ctx, "org_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if filestorage.Instance == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("file storage is not configured"))
	}
	file, err := ctx.FormFile("logo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("logo file is required"))
	}
	reader, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read logo file")
	}
	defer reader.Close()
	url, err := filestorage.Instance.UploadOrganizationLogo(ctx.UserContext(), orgID, reader, file.Size, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("organization_id", orgID), err, "failed to upload logo")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(url))
}

// @Summary Apply
// @Tags Application
// @Description Submits an application of the current user to a published posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "posting ID"
// @Param	body body	 applicationapimodels.ApplyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_board/{id}/apply [post]
func (c *jobBoardApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.ApplyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	applicationID, err := applicationhandler.Instance.Apply(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationID))
}

// @Summary Applications
// @Tags Application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "posting ID"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_board/{id}/applications [get]
func (c *jobBoardApiController) applications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, degraded, err := applicationhandler.Instance.ListByJob(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list)), degraded))
}

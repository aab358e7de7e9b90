package controllers

import (
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	"venue-hiring-backend/middleware"
	apimodels "venue-hiring-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if value == "" {
		return "", errors.Errorf("%s is not set", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path())
	if userID := middleware.GetUserID(ctx); userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	if requestID := ctx.GetRespHeader(fiber.HeaderXRequestID); requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// SendError maps typed handler errors to the response status and envelope.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	if vErr, ok := apperrors.IsValidation(err); ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithData(msg, vErr.Fields))
	}
	if apperrors.IsNotFound(err) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	if apperrors.IsRelationNotFound(err) || apperrors.IsConfiguration(err) {
		logger.WithError(err).Error(msg)
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(msg))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-park-backend/models"
	apimodels "talent-park-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("could not read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is not specified")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError maps handler sentinels to HTTP statuses in one place. Anything
// unrecognized is an internal error; the original cause is logged, the caller
// only sees the fallback message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, fallbackMsg string) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrDuplicateApplication),
		errors.Is(err, models.ErrMissingResume):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrUnauthenticated):
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrUnauthorized):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrUpstreamService):
		logger.WithError(err).Error(fallbackMsg)
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	default:
		logger.WithError(err).Error(fallbackMsg)
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(fallbackMsg))
	}
}

package config

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"match-chat-api/apperr"
	"match-chat-api/config/common"
	"match-chat-api/dto/res"
)

func NewFiber(cfg *common.Config, log *logrus.Logger) *fiber.App {
	appName := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
		BodyLimit:     6 << 20,
		ErrorHandler:  NewErrorHandler(log),
	})
}

// NewErrorHandler renders usecase errors as res.ErrorResponse. Unknown errors become a generic 500.
func NewErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code, message := statusOf(err)
		if code == fiber.StatusInternalServerError {
			log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
		}
		return ctx.Status(code).JSON(res.NewErrorResponse(code, message))
	}
}

func statusOf(err error) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	message := apperr.Message(err)
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return fiber.StatusUnauthorized, message
	case errors.Is(err, apperr.ErrUnauthorized):
		return fiber.StatusForbidden, message
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound, message
	case errors.Is(err, apperr.ErrBadRequest):
		return fiber.StatusBadRequest, message
	case errors.Is(err, apperr.ErrConflict):
		return fiber.StatusConflict, message
	}
	return fiber.StatusInternalServerError, "internal server error"
}

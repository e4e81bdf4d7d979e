package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
	"match-chat-api/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetCurrentUser(ctx *fiber.Ctx) error {
	userResponse, err := handler.UserUsecase.GetUser(ctx.Context(), currentUserID(ctx))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get current user")
		return err
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Get User",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) EditUser(ctx *fiber.Ctx) error {
	payload := new(req.EditProfileRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	userResponse, err := handler.UserUsecase.EditUser(ctx.Context(), currentUserID(ctx), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to edit user")
		return err
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Edit User",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

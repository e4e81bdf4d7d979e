package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
	"match-chat-api/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

// RegisterUser creates a native account. The caller logs in separately to obtain a token.
func (handler *AuthHandler) RegisterUser(ctx *fiber.Ctx) error {
	payload := new(req.RegisterRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	account, err := handler.AuthUsecase.RegisterUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).WithField("email", payload.Email).Warn("Failed to register user")
		return err
	}

	handler.Logger.WithField("userId", account.ID).Info("User registered")
	return ctx.Status(fiber.StatusCreated).JSON(res.CommonResponse[res.RegisterResponse]{
		Message:    "Successfully to Register User",
		StatusCode: fiber.StatusCreated,
		Data:       account,
	})
}

func (handler *AuthHandler) LoginUser(ctx *fiber.Ctx) error {
	payload := new(req.LoginRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	session, err := handler.AuthUsecase.LoginUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Debug("Login rejected")
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[res.LoginResponse]{
		Message:    "Successfully to Login",
		StatusCode: fiber.StatusOK,
		Data:       session,
	})
}

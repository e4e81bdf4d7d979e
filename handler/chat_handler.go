package handler

import (
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"match-chat-api/dto/res"
	"match-chat-api/usecase"
)

type ChatHandler struct {
	usecase.ChatUsecase
	MessageUsecase usecase.MessageUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		ChatUsecase:    chatUsecase,
		MessageUsecase: messageUsecase,
		Logger:         logger,
	}
}

func (handler *ChatHandler) GetAllChat(ctx *fiber.Ctx) error {
	chatResponses, err := handler.ChatUsecase.GetChatsByUser(ctx.Context(), currentUserID(ctx))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get chats")
		return err
	}

	responses := res.CommonResponse[[]res.ChatResponse]{
		Message:    "Successfully to Get All Chats",
		StatusCode: fiber.StatusOK,
		Data:       chatResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *ChatHandler) GetMessagesByID(ctx *fiber.Ctx) error {
	messages, err := handler.ChatUsecase.GetMessagesByChatID(ctx.Context(), currentUserID(ctx), ctx.Params("chatId"))
	if err != nil {
		handler.Logger.WithError(err).Warn("Failed to get messages by chat ID")
		return err
	}

	responses := res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully to Get Messages",
		StatusCode: fiber.StatusOK,
		Data:       messages,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *ChatHandler) ToggleFavorite(ctx *fiber.Ctx) error {
	chat, err := handler.ChatUsecase.ToggleFavorite(ctx.Context(), currentUserID(ctx), ctx.Params("chatId"))
	if err != nil {
		return err
	}

	responses := res.CommonResponse[res.ChatResponse]{
		Message:    "Successfully to Toggle Favorite",
		StatusCode: fiber.StatusOK,
		Data:       chat,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *ChatHandler) MarkRead(ctx *fiber.Ctx) error {
	if err := handler.MessageUsecase.MarkRead(ctx.Context(), ctx.Params("chatId"), currentUserID(ctx)); err != nil {
		handler.Logger.WithError(err).Warn("Failed to mark chat as read")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Successfully to Mark Chat as Read",
		StatusCode: fiber.StatusOK,
	})
}

// GetImage streams the bytes of an image message with its sniffed content type.
func (handler *ChatHandler) GetImage(ctx *fiber.Ctx) error {
	image, err := handler.MessageUsecase.GetImageMessage(ctx.Context(), ctx.Params("imageId"), ctx.Params("chatId"), currentUserID(ctx))
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, mimetype.Detect(image.Src).String())
	return ctx.Status(fiber.StatusOK).Send(image.Src)
}

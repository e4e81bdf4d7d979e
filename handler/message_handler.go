package handler

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"match-chat-api/apperr"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
	"match-chat-api/enum"
	"match-chat-api/usecase"
)

// MaxImageSize bounds an uploaded image message.
const MaxImageSize = 5 << 20

type MessageHandler struct {
	usecase.MessageUsecase
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Logger: logger}
}

// CreateMessage accepts JSON, or multipart form data carrying the image in the "image" field.
func (handler *MessageHandler) CreateMessage(ctx *fiber.Ctx) error {
	payload := new(req.CreateMessageRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	image, err := readImage(ctx)
	if err != nil {
		return err
	}
	if image != nil && payload.Type == "" {
		payload.Type = string(enum.MessageTypeImage)
	}

	message, err := handler.MessageUsecase.CreateMessage(ctx.Context(), currentUserID(ctx), payload, image)
	if err != nil {
		handler.Logger.WithError(err).Warn("Failed to create message")
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to Create Message",
		StatusCode: fiber.StatusCreated,
		Data:       message,
	})
}

func (handler *MessageHandler) UpdateMessage(ctx *fiber.Ctx) error {
	payload := new(req.UpdateMessageRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	message, err := handler.MessageUsecase.UpdateMessage(ctx.Context(), ctx.Params("messageId"), currentUserID(ctx), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("Failed to update message")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to Update Message",
		StatusCode: fiber.StatusOK,
		Data:       message,
	})
}

func (handler *MessageHandler) DeleteMessages(ctx *fiber.Ctx) error {
	mode, ok := enum.ParseDeleteMode(ctx.Query("mode"))
	if !ok {
		return apperr.BadRequest("mode must be soft or hard")
	}
	payload := new(req.DeleteMessagesRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	if err := handler.MessageUsecase.DeleteMessages(ctx.Context(), currentUserID(ctx), payload, mode); err != nil {
		handler.Logger.WithError(err).Warn("Failed to delete messages")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Successfully to Delete Messages",
		StatusCode: fiber.StatusOK,
	})
}

func (handler *MessageHandler) ListUnread(ctx *fiber.Ctx) error {
	messages, err := handler.MessageUsecase.ListUnread(ctx.Context(), currentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully to Get Unread Messages",
		StatusCode: fiber.StatusOK,
		Data:       messages,
	})
}

func (handler *MessageHandler) ListUpdated(ctx *fiber.Ctx) error {
	messages, err := handler.MessageUsecase.ListUpdated(ctx.Context(), currentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully to Get Updated Messages",
		StatusCode: fiber.StatusOK,
		Data:       messages,
	})
}

func (handler *MessageHandler) ListRemoved(ctx *fiber.Ctx) error {
	ids, err := handler.MessageUsecase.ListSoftDeleted(ctx.Context(), currentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[[]string]{
		Message:    "Successfully to Get Removed Messages",
		StatusCode: fiber.StatusOK,
		Data:       ids,
	})
}

// readImage returns nil when the request carries no image.
func readImage(ctx *fiber.Ctx) ([]byte, error) {
	if !strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	header, err := ctx.FormFile("image")
	if err != nil {
		return nil, nil
	}
	if header.Size > MaxImageSize {
		return nil, apperr.BadRequest("image is too large")
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperr.BadRequest("cannot read image")
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, apperr.BadRequest("cannot read image")
	}
	if !strings.HasPrefix(mimetype.Detect(image).String(), "image/") {
		return nil, apperr.BadRequest("attachment is not an image")
	}
	return image, nil
}

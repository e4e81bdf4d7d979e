package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
	"match-chat-api/usecase"
)

type BlockHandler struct {
	usecase.BlockUsecase
	*logrus.Logger
}

func NewBlockHandler(blockUsecase usecase.BlockUsecase, logger *logrus.Logger) *BlockHandler {
	return &BlockHandler{BlockUsecase: blockUsecase, Logger: logger}
}

func (handler *BlockHandler) Block(ctx *fiber.Ctx) error {
	payload := new(req.BlockRequest)
	if err := parseBody(ctx, payload); err != nil {
		return err
	}

	block, err := handler.BlockUsecase.Block(ctx.Context(), currentUserID(ctx), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("Failed to block user")
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res.CommonResponse[res.BlockResponse]{
		Message:    "Successfully to Block User",
		StatusCode: fiber.StatusCreated,
		Data:       block,
	})
}

func (handler *BlockHandler) ListBlocks(ctx *fiber.Ctx) error {
	blocks, err := handler.BlockUsecase.ListBlocks(ctx.Context(), currentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.BlockResponse]{
		Message:    "Successfully to Get Blocked Users",
		StatusCode: fiber.StatusOK,
		Data:       blocks,
	})
}

func (handler *BlockHandler) Unblock(ctx *fiber.Ctx) error {
	if err := handler.BlockUsecase.Unblock(ctx.Context(), currentUserID(ctx), ctx.Params("userId")); err != nil {
		handler.Logger.WithError(err).Warn("Failed to unblock user")
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    "Successfully to Unblock User",
		StatusCode: fiber.StatusOK,
	})
}

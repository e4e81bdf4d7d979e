package usecase

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"match-chat-api/apperr"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
	"match-chat-api/entity"
	"match-chat-api/repository"
)

type BlockUsecaseImpl struct {
	*repository.BlockRepository
	UserRepository *repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewBlockUsecase(blockRepository *repository.BlockRepository, userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) *BlockUsecaseImpl {
	return &BlockUsecaseImpl{BlockRepository: blockRepository, UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger}
}

func (uc *BlockUsecaseImpl) IsBlocked(ctx context.Context, userAID, userBID string) (bool, error) {
	count, err := uc.BlockRepository.CountBetween(ctx, uc.DB, userAID, userBID)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to count blocks")
		return false, fmt.Errorf("count blocks: %w", err)
	}
	return count > 0, nil
}

func (uc *BlockUsecaseImpl) Block(ctx context.Context, userID string, request *req.BlockRequest) (res.BlockResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.BlockResponse{}, validationError(err)
	}
	if request.BlockedUserID == userID {
		return res.BlockResponse{}, apperr.BadRequest("cannot block yourself")
	}

	exists, err := uc.UserRepository.ExistsById(ctx, uc.DB, request.BlockedUserID)
	if err != nil {
		return res.BlockResponse{}, fmt.Errorf("find blocked user: %w", err)
	}
	if !exists {
		return res.BlockResponse{}, apperr.NotFound("user not found")
	}

	block, err := uc.BlockRepository.FindByPair(ctx, uc.DB, userID, request.BlockedUserID)
	if err != nil {
		return res.BlockResponse{}, fmt.Errorf("find block: %w", err)
	}
	if block == nil {
		block = &entity.Block{UserID: userID, BlockedUserID: request.BlockedUserID}
		if err := uc.BlockRepository.Save(ctx, uc.DB, block); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				uc.Logger.WithError(err).Error("failed to save block")
				return res.BlockResponse{}, fmt.Errorf("save block: %w", err)
			}
			if block, err = uc.BlockRepository.FindByPair(ctx, uc.DB, userID, request.BlockedUserID); err != nil || block == nil {
				return res.BlockResponse{}, fmt.Errorf("find block after conflict: %w", err)
			}
		}
	}

	uc.Logger.WithFields(logrus.Fields{"userId": userID, "blockedUserId": request.BlockedUserID}).Info("user blocked")
	return toBlockResponse(block), nil
}

func (uc *BlockUsecaseImpl) ListBlocks(ctx context.Context, userID string) ([]res.BlockResponse, error) {
	blocks, err := uc.BlockRepository.FindAllByUserID(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to list blocks")
		return nil, fmt.Errorf("list blocks: %w", err)
	}

	responses := make([]res.BlockResponse, 0, len(blocks))
	for i := range blocks {
		responses = append(responses, toBlockResponse(&blocks[i]))
	}
	return responses, nil
}

func (uc *BlockUsecaseImpl) Unblock(ctx context.Context, userID, blockedUserID string) error {
	block, err := uc.BlockRepository.FindByPair(ctx, uc.DB, userID, blockedUserID)
	if err != nil {
		return fmt.Errorf("find block: %w", err)
	}
	if block == nil {
		return apperr.NotFound("block not found")
	}
	if err := uc.BlockRepository.HardDelete(ctx, uc.DB, block); err != nil {
		uc.Logger.WithError(err).Error("failed to delete block")
		return fmt.Errorf("delete block: %w", err)
	}
	uc.Logger.WithFields(logrus.Fields{"userId": userID, "blockedUserId": blockedUserID}).Info("user unblocked")
	return nil
}

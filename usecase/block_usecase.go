package usecase

import (
	"context"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
)

type BlockUsecase interface {
	// IsBlocked reports a block in either direction between the two users.
	IsBlocked(ctx context.Context, userAID, userBID string) (bool, error)
	Block(ctx context.Context, userID string, request *req.BlockRequest) (res.BlockResponse, error)
	ListBlocks(ctx context.Context, userID string) ([]res.BlockResponse, error)
	Unblock(ctx context.Context, userID, blockedUserID string) error
}

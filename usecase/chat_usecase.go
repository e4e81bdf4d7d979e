package usecase

import (
	"context"
	"match-chat-api/dto/res"
	"match-chat-api/entity"
)

type ChatUsecase interface {
	// EnsurePersonalChat returns the single chat of the pair, creating it on first use.
	EnsurePersonalChat(ctx context.Context, userAID, userBID string) (*entity.Chat, error)
	GetChatsByUser(ctx context.Context, userID string) ([]res.ChatResponse, error)
	GetMessagesByChatID(ctx context.Context, userID, chatID string) ([]res.MessageResponse, error)
	ToggleFavorite(ctx context.Context, userID, chatID string) (res.ChatResponse, error)
}

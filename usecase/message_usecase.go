package usecase

import (
	"context"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
	"match-chat-api/entity"
	"match-chat-api/enum"
)

type MessageUsecase interface {
	CreateMessage(ctx context.Context, senderID string, request *req.CreateMessageRequest, image []byte) (res.MessageResponse, error)
	UpdateMessage(ctx context.Context, messageID, requesterID string, request *req.UpdateMessageRequest) (res.MessageResponse, error)
	DeleteMessages(ctx context.Context, requesterID string, request *req.DeleteMessagesRequest, mode enum.DeleteMode) error
	MarkRead(ctx context.Context, chatID, requesterID string) error
	ListUnread(ctx context.Context, userID string) ([]res.MessageResponse, error)
	ListUnreadChatIDs(ctx context.Context, userID string) ([]string, error)
	ListUpdated(ctx context.Context, userID string) ([]res.MessageResponse, error)
	ListSoftDeleted(ctx context.Context, userID string) ([]string, error)
	GetImageMessage(ctx context.Context, imageID, chatID, requesterID string) (*entity.ImageMessage, error)
	// RelayMessage forwards an ephemeral text to the recipient's live connections without storing it.
	RelayMessage(ctx context.Context, senderID string, request *req.RelayMessageRequest) error
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"match-chat-api/apperr"
	"match-chat-api/dto"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
	"match-chat-api/entity"
	"match-chat-api/enum"
	"match-chat-api/event"
	"match-chat-api/repository"
	"strings"
	"time"
)

type MessageUsecaseImpl struct {
	*repository.MessageRepository
	ChatRepository *repository.ChatRepository
	UserRepository *repository.UserRepository
	ChatUsecase    ChatUsecase
	BlockUsecase   BlockUsecase
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	Publisher event.Publisher
	// Now is the clock used for edit windows and default message times.
	Now func() time.Time
}

func NewMessageUsecase(
	messageRepository *repository.MessageRepository,
	chatRepository *repository.ChatRepository,
	userRepository *repository.UserRepository,
	chatUsecase ChatUsecase,
	blockUsecase BlockUsecase,
	validate *validator.Validate,
	DB *gorm.DB,
	logger *logrus.Logger,
	publisher event.Publisher,
) *MessageUsecaseImpl {
	return &MessageUsecaseImpl{
		MessageRepository: messageRepository,
		ChatRepository:    chatRepository,
		UserRepository:    userRepository,
		ChatUsecase:       chatUsecase,
		BlockUsecase:      blockUsecase,
		Validate:          validate,
		DB:                DB,
		Logger:            logger,
		Publisher:         publisher,
		Now:               time.Now,
	}
}

func (uc *MessageUsecaseImpl) CreateMessage(ctx context.Context, senderID string, request *req.CreateMessageRequest, image []byte) (res.MessageResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Debug("invalid create message request")
		return res.MessageResponse{}, validationError(err)
	}

	messageType := enum.MessageType(request.Type)
	if messageType == "" {
		messageType = enum.MessageTypeText
	}
	switch {
	case messageType == enum.MessageTypeImage && len(image) == 0:
		return res.MessageResponse{}, apperr.BadRequest("image message requires an image")
	case messageType == enum.MessageTypeText && strings.TrimSpace(request.Text) == "":
		return res.MessageResponse{}, apperr.BadRequest("text message requires text")
	}
	if request.ReceiverID == senderID {
		return res.MessageResponse{}, apperr.BadRequest("cannot send a message to yourself")
	}

	// receiver and blocking gate
	exists, err := uc.UserRepository.ExistsById(ctx, uc.DB, request.ReceiverID)
	if err != nil {
		return res.MessageResponse{}, fmt.Errorf("find receiver: %w", err)
	}
	if !exists {
		return res.MessageResponse{}, apperr.NotFound("receiver not found")
	}
	blocked, err := uc.BlockUsecase.IsBlocked(ctx, senderID, request.ReceiverID)
	if err != nil {
		return res.MessageResponse{}, err
	}
	if blocked {
		return res.MessageResponse{}, apperr.Unauthorized("messaging between these users is blocked")
	}

	chat, err := uc.ChatUsecase.EnsurePersonalChat(ctx, senderID, request.ReceiverID)
	if err != nil {
		return res.MessageResponse{}, err
	}

	var replyToID *string
	if request.ReplyToID != "" {
		inChat, err := uc.MessageRepository.ExistsInChat(ctx, uc.DB, request.ReplyToID, chat.ID)
		if err != nil {
			return res.MessageResponse{}, fmt.Errorf("find replied message: %w", err)
		}
		if !inChat {
			return res.MessageResponse{}, apperr.BadRequest("replied message is not part of this chat")
		}
		replyToID = &request.ReplyToID
	}

	createdAt := uc.Now()
	if request.CreatedAt != nil {
		createdAt = *request.CreatedAt
	}

	message := &entity.Message{
		BaseEntity: entity.BaseEntity{CreatedAt: createdAt},
		Type:       messageType,
		SenderID:   senderID,
		ReceiverID: request.ReceiverID,
		ChatID:     chat.ID,
		ReplyToID:  replyToID,
	}
	if request.Text != "" {
		text := request.Text
		message.Text = &text
	}

	// message, image and last message date commit together
	err = uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ImageMessage").Create(message).Error; err != nil {
			return fmt.Errorf("save message: %w", err)
		}
		if messageType == enum.MessageTypeImage {
			imageMessage := &entity.ImageMessage{MessageID: message.ID, UserID: senderID, Src: image}
			if err := tx.Create(imageMessage).Error; err != nil {
				return fmt.Errorf("save image: %w", err)
			}
			message.ImageMessage = &entity.ImageMessage{BaseEntity: imageMessage.BaseEntity, MessageID: message.ID, UserID: senderID}
		}
		if err := uc.ChatRepository.AdvanceLastMessageDate(ctx, tx, chat.ID, message.CreatedAt); err != nil {
			return fmt.Errorf("advance last message date: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.Logger.WithError(err).Error("failed to create message")
		return res.MessageResponse{}, err
	}

	response := toMessageResponse(message)
	uc.Publisher.Publish(ctx, event.Event{
		Topic: event.MessageCreatedTopic,
		Data:  event.MessageCreatedData{ReceiverID: message.ReceiverID, Message: response},
	})

	uc.Logger.WithFields(logrus.Fields{"messageId": message.ID, "chatId": chat.ID}).Info("message created")
	return response, nil
}

func (uc *MessageUsecaseImpl) UpdateMessage(ctx context.Context, messageID, requesterID string, request *req.UpdateMessageRequest) (res.MessageResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.MessageResponse{}, validationError(err)
	}

	var updated *entity.Message
	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		message, err := uc.MessageRepository.FindEditableForUpdate(ctx, tx, messageID, requesterID)
		if err != nil {
			return notFound(err, "message not found")
		}
		if !message.Editable(uc.Now()) {
			if message.CountUpdate >= entity.MaxMessageEdits {
				return apperr.Unauthorized("edit limit reached")
			}
			return apperr.Unauthorized("edit window has expired")
		}

		affected, err := uc.MessageRepository.UpdateTextIfCount(ctx, tx, message.ID, message.CountUpdate, request.Text)
		if err != nil {
			return fmt.Errorf("update message: %w", err)
		}
		if affected == 0 {
			return apperr.Unauthorized("message was edited concurrently")
		}

		updated, err = uc.MessageRepository.FindByIDWithImage(ctx, tx, message.ID)
		if err != nil {
			return fmt.Errorf("reload message: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.Logger.WithError(err).WithField("messageId", messageID).Debug("message not updated")
		return res.MessageResponse{}, err
	}

	response := toMessageResponse(updated)
	uc.Publisher.Publish(ctx, event.Event{
		Topic: event.MessageUpdatedTopic,
		Data:  event.MessageUpdatedData{ReceiverID: updated.ReceiverID, Message: response},
	})
	return response, nil
}

func (uc *MessageUsecaseImpl) DeleteMessages(ctx context.Context, requesterID string, request *req.DeleteMessagesRequest, mode enum.DeleteMode) error {
	if err := uc.Validate.Struct(request); err != nil {
		return validationError(err)
	}

	ids := uniqueIDs(request.IDs)
	messages, err := uc.MessageRepository.FindByIDs(ctx, uc.DB, ids)
	if err != nil {
		return fmt.Errorf("find messages: %w", err)
	}
	if len(messages) != len(ids) {
		return apperr.NotFound("message not found")
	}

	// receivers keep the order in which they first appear
	var receivers []string
	removedByReceiver := make(map[string][]string)
	for _, message := range messages {
		if message.SenderID != requesterID && message.ReceiverID != requesterID {
			return apperr.Unauthorized("message does not belong to the requester")
		}
		// soft delete only touches the sender side, so a receiver-only request has nothing to announce
		if mode == enum.DeleteModeSoft && message.SenderID != requesterID {
			continue
		}
		if _, ok := removedByReceiver[message.ReceiverID]; !ok {
			receivers = append(receivers, message.ReceiverID)
		}
		removedByReceiver[message.ReceiverID] = append(removedByReceiver[message.ReceiverID], message.ID)
	}

	for _, receiverID := range receivers {
		uc.Publisher.Publish(ctx, event.Event{
			Topic: event.MessagesRemovedTopic,
			Data: event.MessagesRemovedData{
				ReceiverID: receiverID,
				Payload:    dto.RemoveMessages{IDs: removedByReceiver[receiverID], UserID: receiverID},
			},
		})
	}

	switch mode {
	case enum.DeleteModeHard:
		err = uc.MessageRepository.HardDeleteForParticipant(ctx, uc.DB, ids, requesterID)
	default:
		err = uc.MessageRepository.SoftDeleteBySender(ctx, uc.DB, ids, requesterID)
	}
	if err != nil {
		uc.Logger.WithError(err).WithField("mode", mode).Error("failed to delete messages")
		return fmt.Errorf("delete messages: %w", err)
	}

	uc.Logger.WithFields(logrus.Fields{"count": len(ids), "mode": mode}).Info("messages deleted")
	return nil
}

func (uc *MessageUsecaseImpl) MarkRead(ctx context.Context, chatID, requesterID string) error {
	chat, err := uc.ChatRepository.FindChatByID(ctx, uc.DB, chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.BadRequest("chat not found")
		}
		return fmt.Errorf("find chat: %w", err)
	}
	if len(chat.Participants) == 0 {
		return apperr.BadRequest("chat has no participants")
	}
	if !hasParticipant(chat, requesterID) {
		return apperr.NotFound("chat not found")
	}

	if _, err := uc.MessageRepository.MarkReadInChat(ctx, uc.DB, chat.ID, requesterID); err != nil {
		uc.Logger.WithError(err).Error("failed to mark messages as read")
		return fmt.Errorf("mark read: %w", err)
	}

	notify := make([]string, 0, len(chat.Participants))
	for _, participant := range chat.Participants {
		if participant.UserID != requesterID {
			notify = append(notify, participant.UserID)
		}
	}
	uc.Publisher.Publish(ctx, event.Event{
		Topic: event.MessagesReadTopic,
		Data: event.MessagesReadData{
			NotifyUserIDs: notify,
			Payload:       dto.MessageReady{ChatID: chat.ID, UserID: requesterID},
		},
	})
	return nil
}

func (uc *MessageUsecaseImpl) ListUnread(ctx context.Context, userID string) ([]res.MessageResponse, error) {
	messages, err := uc.MessageRepository.FindUnreadByReceiver(ctx, uc.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("list unread: %w", err)
	}
	return toMessageResponses(messages), nil
}

func (uc *MessageUsecaseImpl) ListUnreadChatIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := uc.MessageRepository.FindUnreadChatIDs(ctx, uc.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("list unread chats: %w", err)
	}
	return ids, nil
}

func (uc *MessageUsecaseImpl) ListUpdated(ctx context.Context, userID string) ([]res.MessageResponse, error) {
	messages, err := uc.MessageRepository.FindUpdatedForUser(ctx, uc.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("list updated: %w", err)
	}
	return toMessageResponses(messages), nil
}

func (uc *MessageUsecaseImpl) ListSoftDeleted(ctx context.Context, userID string) ([]string, error) {
	ids, err := uc.MessageRepository.FindSoftDeletedIDsForUser(ctx, uc.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("list soft deleted: %w", err)
	}
	return ids, nil
}

func (uc *MessageUsecaseImpl) GetImageMessage(ctx context.Context, imageID, chatID, requesterID string) (*entity.ImageMessage, error) {
	image, err := uc.MessageRepository.FindImageForParticipant(ctx, uc.DB, imageID, chatID, requesterID)
	if err != nil {
		return nil, notFound(err, "image not found")
	}
	return image, nil
}

func (uc *MessageUsecaseImpl) RelayMessage(ctx context.Context, senderID string, request *req.RelayMessageRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		return validationError(err)
	}
	if request.RecipientID == senderID {
		return apperr.BadRequest("cannot relay a message to yourself")
	}

	blocked, err := uc.BlockUsecase.IsBlocked(ctx, senderID, request.RecipientID)
	if err != nil {
		return err
	}
	if blocked {
		return apperr.Unauthorized("messaging between these users is blocked")
	}

	uc.Publisher.Publish(ctx, event.Event{
		Topic: event.MessageRelayedTopic,
		Data: event.MessageRelayedData{
			RecipientID: request.RecipientID,
			Payload:     dto.RelayedMessage{Message: request.Message, SenderID: senderID},
		},
	})
	return nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

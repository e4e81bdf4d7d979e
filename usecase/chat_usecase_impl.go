package usecase

import (
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"match-chat-api/apperr"
	"match-chat-api/dto/res"
	"match-chat-api/entity"
	"match-chat-api/repository"
)

type ChatUsecaseImpl struct {
	*repository.ChatRepository
	MessageRepository *repository.MessageRepository
	*logrus.Logger
	*gorm.DB
}

func NewChatUsecase(chatRepository *repository.ChatRepository, messageRepository *repository.MessageRepository, logger *logrus.Logger, DB *gorm.DB) *ChatUsecaseImpl {
	return &ChatUsecaseImpl{ChatRepository: chatRepository, MessageRepository: messageRepository, Logger: logger, DB: DB}
}

func (uc *ChatUsecaseImpl) EnsurePersonalChat(ctx context.Context, userAID, userBID string) (*entity.Chat, error) {
	if userAID == userBID {
		return nil, apperr.BadRequest("a chat needs two different users")
	}
	pairKey := entity.PairKey(userAID, userBID)

	existingChat, err := uc.ChatRepository.FindByPairKey(ctx, uc.DB, pairKey)
	if err != nil {
		return nil, fmt.Errorf("find chat: %w", err)
	}
	if existingChat != nil {
		return existingChat, nil
	}

	newChat := &entity.Chat{PairKey: pairKey}
	participants := []entity.ChatParticipant{
		{UserID: userAID},
		{UserID: userBID},
	}

	createErr := uc.ChatRepository.CreateChatWithParticipants(ctx, uc.DB, newChat, participants)
	if createErr == nil {
		uc.Logger.WithField("chatId", newChat.ID).Debug("chat created")
		return newChat, nil
	}

	// A concurrent resolver won the unique pair key; return its chat.
	survivor, err := uc.ChatRepository.FindByPairKey(ctx, uc.DB, pairKey)
	if err != nil {
		return nil, fmt.Errorf("find chat after create failure: %w", err)
	}
	if survivor == nil {
		uc.Logger.WithError(createErr).Error("failed to create chat")
		return nil, fmt.Errorf("create chat: %w", createErr)
	}
	uc.Logger.WithField("chatId", survivor.ID).Debug("chat creation lost race, using existing chat")
	return survivor, nil
}

func (uc *ChatUsecaseImpl) GetChatsByUser(ctx context.Context, userID string) ([]res.ChatResponse, error) {
	chats, err := uc.ChatRepository.FindAllByUserID(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to get chats by user ID")
		return nil, fmt.Errorf("list chats: %w", err)
	}

	chatResponses := make([]res.ChatResponse, 0, len(chats))
	for i := range chats {
		response, err := uc.chatResponse(ctx, &chats[i], userID)
		if err != nil {
			return nil, err
		}
		chatResponses = append(chatResponses, response)
	}
	return chatResponses, nil
}

func (uc *ChatUsecaseImpl) GetMessagesByChatID(ctx context.Context, userID, chatID string) ([]res.MessageResponse, error) {
	isParticipant, err := uc.ChatRepository.IsUserInChat(ctx, uc.DB, chatID, userID)
	if err != nil {
		return nil, fmt.Errorf("verify participant: %w", err)
	}
	if !isParticipant {
		return nil, apperr.NotFound("chat not found")
	}

	messages, err := uc.MessageRepository.FindVisibleByChatID(ctx, uc.DB, chatID, userID)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	return toMessageResponses(messages), nil
}

func (uc *ChatUsecaseImpl) ToggleFavorite(ctx context.Context, userID, chatID string) (res.ChatResponse, error) {
	chat, err := uc.ChatRepository.FindChatByID(ctx, uc.DB, chatID)
	if err != nil {
		return res.ChatResponse{}, notFound(err, "chat not found")
	}
	if !hasParticipant(chat, userID) {
		return res.ChatResponse{}, apperr.NotFound("chat not found")
	}

	if err := uc.ChatRepository.ToggleFavorite(ctx, uc.DB, chat); err != nil {
		uc.Logger.WithError(err).Error("failed to toggle favorite")
		return res.ChatResponse{}, fmt.Errorf("toggle favorite: %w", err)
	}
	return uc.chatResponse(ctx, chat, userID)
}

func (uc *ChatUsecaseImpl) chatResponse(ctx context.Context, chat *entity.Chat, userID string) (res.ChatResponse, error) {
	response := res.ChatResponse{
		ChatID:          chat.ID,
		Fav:             chat.Fav,
		LastMessageDate: chat.LastMessageDate,
		CreatedAt:       chat.CreatedAt,
	}

	for _, participant := range chat.Participants {
		if participant.UserID != userID && participant.User != nil {
			partner := toUserResponse(participant.User)
			response.Partner = &partner
			break
		}
	}

	lastMessage, err := uc.MessageRepository.FindLastVisible(ctx, uc.DB, chat.ID, userID)
	if err != nil {
		return res.ChatResponse{}, fmt.Errorf("get last message: %w", err)
	}
	if lastMessage != nil {
		message := toMessageResponse(lastMessage)
		response.LastMessage = &message
	}

	response.UnreadCount, err = uc.MessageRepository.CountUnreadInChat(ctx, uc.DB, chat.ID, userID)
	if err != nil {
		return res.ChatResponse{}, fmt.Errorf("count unread: %w", err)
	}
	return response, nil
}

func hasParticipant(chat *entity.Chat, userID string) bool {
	for _, participant := range chat.Participants {
		if participant.UserID == userID {
			return true
		}
	}
	return false
}

package repository

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"match-chat-api/entity"
	"time"
)

type ChatRepository struct {
	Repository[entity.Chat]
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

// FindByPairKey returns nil, nil when the pair has no chat yet.
func (repository ChatRepository) FindByPairKey(ctx context.Context, db *gorm.DB, pairKey string) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.WithContext(ctx).
		Preload("Participants").
		Where("pair_key = ?", pairKey).
		First(&chat).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (repository ChatRepository) FindChatByID(ctx context.Context, db *gorm.DB, id string) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.WithContext(ctx).Preload("Participants").Where("id = ?", id).First(&chat).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (repository ChatRepository) CreateChatWithParticipants(ctx context.Context, db *gorm.DB, chat *entity.Chat, participants []entity.ChatParticipant) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Participants", "Messages").Create(chat).Error; err != nil {
			return err
		}
		for i := range participants {
			participants[i].ChatID = chat.ID
		}
		if err := tx.Create(&participants).Error; err != nil {
			return err
		}
		chat.Participants = participants
		return nil
	})
}

// FindAllByUserID lists the chats of userID, most recent activity first.
func (repository ChatRepository) FindAllByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.Chat, error) {
	var chats []entity.Chat

	err := db.WithContext(ctx).
		Model(&entity.Chat{}).
		Joins("JOIN t_chat_participant cp ON cp.chat_id = t_chat.id").
		Where("cp.user_id = ?", userID).
		Preload("Participants.User").
		Order("t_chat.last_message_date IS NULL, t_chat.last_message_date DESC, t_chat.created_at DESC").
		Find(&chats).Error

	if err != nil {
		return nil, err
	}

	return chats, nil
}

func (repository ChatRepository) IsUserInChat(ctx context.Context, db *gorm.DB, chatId, userId string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.ChatParticipant{}).
		Where("chat_id = ? AND user_id = ?", chatId, userId).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AdvanceLastMessageDate moves the chat's last message date to at only when at is later.
func (repository ChatRepository) AdvanceLastMessageDate(ctx context.Context, db *gorm.DB, chatID string, at time.Time) error {
	return db.WithContext(ctx).
		Model(&entity.Chat{}).
		Where("id = ? AND (last_message_date IS NULL OR last_message_date < ?)", chatID, at).
		Update("last_message_date", at).Error
}

func (repository ChatRepository) ToggleFavorite(ctx context.Context, db *gorm.DB, chat *entity.Chat) error {
	chat.Fav = !chat.Fav
	return db.WithContext(ctx).
		Model(&entity.Chat{}).
		Where("id = ?", chat.ID).
		Update("fav", chat.Fav).Error
}

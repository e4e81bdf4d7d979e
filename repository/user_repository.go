package repository

import (
	"context"
	"gorm.io/gorm"
	"match-chat-api/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindContactIDs returns every distinct user sharing a chat with userID.
func (repository UserRepository) FindContactIDs(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.WithContext(ctx).
		Model(&entity.ChatParticipant{}).
		Distinct("user_id").
		Where("chat_id IN (?)", db.Model(&entity.ChatParticipant{}).Select("chat_id").Where("user_id = ?", userID)).
		Where("user_id <> ?", userID).
		Pluck("user_id", &ids).Error
	return ids, err
}

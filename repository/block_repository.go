package repository

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"match-chat-api/entity"
)

type BlockRepository struct {
	Repository[entity.Block]
}

func NewBlockRepository() *BlockRepository {
	return &BlockRepository{}
}

// CountBetween counts blocks in either direction between the two users.
func (repository BlockRepository) CountBetween(ctx context.Context, db *gorm.DB, userAID, userBID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Block{}).
		Where("(user_id = ? AND blocked_user_id = ?) OR (user_id = ? AND blocked_user_id = ?)",
			userAID, userBID, userBID, userAID).
		Count(&count).Error
	return count, err
}

func (repository BlockRepository) FindByPair(ctx context.Context, db *gorm.DB, userID, blockedUserID string) (*entity.Block, error) {
	var block entity.Block
	err := db.WithContext(ctx).
		Where("user_id = ? AND blocked_user_id = ?", userID, blockedUserID).
		First(&block).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (repository BlockRepository) FindAllByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.Block, error) {
	var blocks []entity.Block
	err := db.WithContext(ctx).
		Preload("BlockedUser").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&blocks).Error
	return blocks, err
}

func (repository BlockRepository) HardDelete(ctx context.Context, db *gorm.DB, block *entity.Block) error {
	return db.WithContext(ctx).Unscoped().Delete(block).Error
}

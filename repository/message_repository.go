package repository

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"match-chat-api/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// FindEditableForUpdate row-locks the message when it was sent by senderID and is not soft-deleted.
func (repository MessageRepository) FindEditableForUpdate(ctx context.Context, tx *gorm.DB, id, senderID string) (*entity.Message, error) {
	var message entity.Message
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND sender_id = ? AND deleted_locally = ?", id, senderID, false).
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// UpdateTextIfCount applies an edit only if the counter still holds expectedCount.
// It returns the number of rows changed.
func (repository MessageRepository) UpdateTextIfCount(ctx context.Context, tx *gorm.DB, id string, expectedCount int, text string) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ? AND count_update = ?", id, expectedCount).
		Updates(map[string]interface{}{
			"text":         text,
			"is_update":    true,
			"count_update": gorm.Expr("count_update + ?", 1),
		})
	return result.RowsAffected, result.Error
}

func (repository MessageRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []string) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).Where("id IN ?", ids).Find(&messages).Error
	return messages, err
}

func (repository MessageRepository) ExistsInChat(ctx context.Context, db *gorm.DB, id, chatID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ? AND chat_id = ?", id, chatID).
		Count(&count).Error
	return count > 0, err
}

// SoftDeleteBySender flags the messages among ids that senderID sent.
func (repository MessageRepository) SoftDeleteBySender(ctx context.Context, db *gorm.DB, ids []string, senderID string) error {
	return db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id IN ? AND sender_id = ?", ids, senderID).
		Update("deleted_locally", true).Error
}

// HardDeleteForParticipant removes the messages among ids that userID sent or received, with their images.
func (repository MessageRepository) HardDeleteForParticipant(ctx context.Context, db *gorm.DB, ids []string, userID string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&entity.Message{}).
			Select("id").
			Where("id IN ? AND (sender_id = ? OR receiver_id = ?)", ids, userID, userID)

		if err := tx.Unscoped().Where("message_id IN (?)", owned).Delete(&entity.ImageMessage{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().
			Where("id IN ? AND (sender_id = ? OR receiver_id = ?)", ids, userID, userID).
			Delete(&entity.Message{}).Error
	})
}

// MarkReadInChat flags as read the messages of chatID not sent by readerID and not soft-deleted.
func (repository MessageRepository) MarkReadInChat(ctx context.Context, db *gorm.DB, chatID, readerID string) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("chat_id = ? AND sender_id <> ? AND deleted_locally = ? AND is_read = ?", chatID, readerID, false, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (repository MessageRepository) FindUnreadByReceiver(ctx context.Context, db *gorm.DB, receiverID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Preload("ImageMessage", selectImageMeta).
		Where("receiver_id = ? AND is_read = ? AND deleted_locally = ?", receiverID, false, false).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (repository MessageRepository) FindUnreadChatIDs(ctx context.Context, db *gorm.DB, receiverID string) ([]string, error) {
	var ids []string
	err := db.WithContext(ctx).
		Model(&entity.Message{}).
		Distinct("chat_id").
		Where("receiver_id = ? AND is_read = ? AND deleted_locally = ?", receiverID, false, false).
		Pluck("chat_id", &ids).Error
	return ids, err
}

func (repository MessageRepository) FindUpdatedForUser(ctx context.Context, db *gorm.DB, userID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Preload("ImageMessage", selectImageMeta).
		Where("is_update = ? AND (sender_id = ? OR receiver_id = ?)", true, userID, userID).
		Order("updated_at ASC").
		Find(&messages).Error
	return messages, err
}

func (repository MessageRepository) FindSoftDeletedIDsForUser(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("deleted_locally = ? AND (sender_id = ? OR receiver_id = ?)", true, userID, userID).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// FindVisibleByChatID lists a chat as viewerID sees it: messages viewerID soft-deleted as sender are hidden.
func (repository MessageRepository) FindVisibleByChatID(ctx context.Context, db *gorm.DB, chatID, viewerID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Preload("ImageMessage", selectImageMeta).
		Where("chat_id = ?", chatID).
		Where("NOT (deleted_locally = ? AND sender_id = ?)", true, viewerID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// FindLastVisible returns nil, nil for a chat with nothing visible to viewerID.
func (repository MessageRepository) FindLastVisible(ctx context.Context, db *gorm.DB, chatID, viewerID string) (*entity.Message, error) {
	var message entity.Message
	err := db.WithContext(ctx).
		Preload("ImageMessage", selectImageMeta).
		Where("chat_id = ?", chatID).
		Where("NOT (deleted_locally = ? AND sender_id = ?)", true, viewerID).
		Order("created_at DESC").
		First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (repository MessageRepository) CountUnreadInChat(ctx context.Context, db *gorm.DB, chatID, receiverID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("chat_id = ? AND receiver_id = ? AND is_read = ? AND deleted_locally = ?", chatID, receiverID, false, false).
		Count(&count).Error
	return count, err
}

// FindImageForParticipant returns the image only if its message belongs to chatID and userID takes part in that chat.
func (repository MessageRepository) FindImageForParticipant(ctx context.Context, db *gorm.DB, imageID, chatID, userID string) (*entity.ImageMessage, error) {
	var image entity.ImageMessage
	err := db.WithContext(ctx).
		Joins("JOIN t_message m ON m.id = t_image_message.message_id").
		Joins("JOIN t_chat_participant cp ON cp.chat_id = m.chat_id").
		Where("t_image_message.id = ? AND m.chat_id = ? AND cp.user_id = ? AND m.deleted_at IS NULL", imageID, chatID, userID).
		First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// selectImageMeta keeps image bytes out of message listings.
func selectImageMeta(db *gorm.DB) *gorm.DB {
	return db.Select("id", "message_id", "user_id", "created_at", "updated_at", "deleted_at")
}

func (repository MessageRepository) FindByIDWithImage(ctx context.Context, db *gorm.DB, id string) (*entity.Message, error) {
	var message entity.Message
	err := db.WithContext(ctx).
		Preload("ImageMessage", selectImageMeta).
		Where("id = ?", id).
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

package entity

import (
	"match-chat-api/enum"
	"time"
)

const (
	// MaxMessageEdits is the number of times a sender may edit one message.
	MaxMessageEdits = 3
	// MessageEditWindow bounds edits relative to the message creation time.
	MessageEditWindow = 15 * time.Minute
)

type Message struct {
	BaseEntity
	Text           *string          `json:"text" gorm:"type:text"`
	Type           enum.MessageType `json:"type" gorm:"type:varchar(10);not null;default:'TEXT'"`
	SenderID       string           `json:"senderId" gorm:"type:varchar(255);not null;index"`
	ReceiverID     string           `json:"receiverId" gorm:"type:varchar(255);not null;index"`
	ChatID         string           `json:"chatId" gorm:"type:varchar(255);not null;index"`
	IsRead         bool             `json:"isRead" gorm:"not null;default:false"`
	DeletedLocally bool             `json:"deletedLocally" gorm:"not null;default:false"`
	IsUpdate       bool             `json:"isUpdate" gorm:"not null;default:false"`
	CountUpdate    int              `json:"countUpdate" gorm:"not null;default:0"`
	ReplyToID      *string          `json:"replyToId,omitempty" gorm:"type:varchar(255)"`

	ImageMessage *ImageMessage `json:"imageMessage,omitempty" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
}

// Editable reports whether the edit window and counter still allow an edit at now.
func (message *Message) Editable(now time.Time) bool {
	return now.Sub(message.CreatedAt) <= MessageEditWindow && message.CountUpdate < MaxMessageEdits
}

type ImageMessage struct {
	BaseEntity
	MessageID string `json:"messageId" gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID    string `json:"userId" gorm:"type:varchar(255);not null"`
	Src       []byte `json:"-"`
}

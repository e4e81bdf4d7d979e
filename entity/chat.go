package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"strings"
	"time"
)

type Chat struct {
	BaseEntity
	// PairKey is unique per unordered pair of participants, see PairKey.
	PairKey         string     `json:"-" gorm:"type:varchar(512);uniqueIndex;not null"`
	LastMessageDate *time.Time `json:"lastMessageDate,omitempty" gorm:"index"`
	Fav             bool       `json:"fav" gorm:"default:false"`

	Participants []ChatParticipant `json:"participants" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
	Messages     []Message         `json:"messages,omitempty" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
}

type ChatParticipant struct {
	ID     string `json:"id" gorm:"primaryKey;type:varchar(255)"`
	ChatID string `json:"chatId" gorm:"type:varchar(255);not null;uniqueIndex:ux_chat_participant,priority:1"`
	UserID string `json:"userId" gorm:"type:varchar(255);not null;index;uniqueIndex:ux_chat_participant,priority:2"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (participant *ChatParticipant) BeforeCreate(tx *gorm.DB) error {
	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}
	return nil
}

// PairKey returns the canonical key of a two-party chat. Argument order does not matter.
func PairKey(userAID, userBID string) string {
	if userAID > userBID {
		userAID, userBID = userBID, userAID
	}
	return strings.Join([]string{userAID, userBID}, ":")
}

package entity

import (
	"match-chat-api/enum"
	"time"
)

type User struct {
	BaseEntity
	Name      string        `json:"name" gorm:"type:varchar(255);not null"`
	BirthDate time.Time     `json:"birthDate"`
	Gender    enum.Gender   `json:"gender,omitempty" gorm:"type:varchar(10)"`
	Provider  enum.Provider `json:"provider" gorm:"type:varchar(10);default:'NATIVE'"`
	Avatar    string        `json:"avatar,omitempty" gorm:"type:text"`
	AuthID    string        `json:"authId" gorm:"type:varchar(255);unique"`

	Participating []ChatParticipant `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

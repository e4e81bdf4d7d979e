package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseEntity is embedded by every table: a uuid key plus the GORM timestamps.
// A CreatedAt set by the caller is kept, which lets clients backdate offline messages.
type BaseEntity struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (base *BaseEntity) BeforeCreate(*gorm.DB) error {
	if base.ID != "" {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	base.ID = id.String()
	return nil
}

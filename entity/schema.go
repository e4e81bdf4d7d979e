package entity

import (
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var NamingStrategy = schema.NamingStrategy{
	TablePrefix:   "t_",
	SingularTable: true,
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Auth{},
		&User{},
		&Chat{},
		&ChatParticipant{},
		&Message{},
		&ImageMessage{},
		&Block{},
	)
}

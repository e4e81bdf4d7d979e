package repository

import (
	"context"
	"gorm.io/gorm"
	"match-chat-api/entity"
)

type AuthRepository struct {
	Repository[entity.Auth]
}

func NewAuthRepository() *AuthRepository {
	return &AuthRepository{}
}

func (repository AuthRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (entity.Auth, error) {
	auth := entity.Auth{}
	err := db.WithContext(ctx).Preload("User").Where("email = ?", email).First(&auth).Error
	return auth, err
}

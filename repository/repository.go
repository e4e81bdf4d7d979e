package repository

import (
	"context"
	"gorm.io/gorm"
)

// Repository holds the CRUD calls shared by every entity store. Methods take the
// handle to run on so callers can pass either the pool or an open transaction.
type Repository[T any] struct{}

func (repo Repository[T]) Save(ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Create(row).Error
}

// Update writes every column of row, zero values included.
func (repo Repository[T]) Update(ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Save(row).Error
}

func (repo Repository[T]) FindById(ctx context.Context, db *gorm.DB, row *T, id string) error {
	return db.WithContext(ctx).Take(row, "id = ?", id).Error
}

func (repo Repository[T]) ExistsById(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Limit(1).Count(&count).Error
	return count > 0, err
}

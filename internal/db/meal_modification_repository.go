package db

import (
	"context"

	"github.com/terraincognita07/dailydiet/internal/models"
	"gorm.io/gorm"
)

type MealModificationRepository struct {
	database *gorm.DB
}

func NewMealModificationRepository(database *gorm.DB) *MealModificationRepository {
	return &MealModificationRepository{database: database}
}

func (repo *MealModificationRepository) Create(ctx context.Context, entry *models.MealModification) error {
	return repo.database.WithContext(ctx).Create(entry).Error
}

func (repo *MealModificationRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.MealModification, error) {
	entries := make([]models.MealModification, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

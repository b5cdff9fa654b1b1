package db

import (
	"context"
	"time"

	"github.com/terraincognita07/dailydiet/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

// ListByUser returns the user's meals, most recent first.
func (repo *MealRepository) ListByUser(ctx context.Context, userID string) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("time DESC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) FindByUserAndID(ctx context.Context, userID string, mealID string) (models.Meal, bool, error) {
	meal := models.Meal{}
	result := repo.database.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Limit(1).
		Find(&meal)
	if result.Error != nil {
		return models.Meal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Meal{}, false, nil
	}
	return meal, true, nil
}

func (repo *MealRepository) Create(ctx context.Context, meal *models.Meal) error {
	return repo.database.WithContext(ctx).Create(meal).Error
}

func (repo *MealRepository) UpdateByUserAndID(ctx context.Context, userID string, mealID string, updates map[string]any) error {
	return repo.database.WithContext(ctx).Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(updates).Error
}

func (repo *MealRepository) DeleteByUserAndID(ctx context.Context, userID string, mealID string) (bool, error) {
	result := repo.database.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

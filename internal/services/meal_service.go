package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/dailydiet/internal/models"
)

var ErrMealNotFound = errors.New("meal not found")

type MealRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Meal, error)
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.Meal, error)
	FindByUserAndID(ctx context.Context, userID string, mealID string) (models.Meal, bool, error)
	Create(ctx context.Context, meal *models.Meal) error
	UpdateByUserAndID(ctx context.Context, userID string, mealID string, updates map[string]any) error
	DeleteByUserAndID(ctx context.Context, userID string, mealID string) (bool, error)
}

type MealService struct {
	meals    MealRepository
	location *time.Location
	now      func() time.Time
}

func NewMealService(meals MealRepository, location *time.Location) *MealService {
	if location == nil {
		location = time.UTC
	}
	return &MealService{
		meals:    meals,
		location: location,
		now:      time.Now,
	}
}

func (service *MealService) Create(ctx context.Context, userID string, input MealInput) (models.Meal, error) {
	meal, err := input.newMeal(userID, service.location)
	if err != nil {
		return models.Meal{}, err
	}
	meal.ID = uuid.NewString()

	if err := service.meals.Create(ctx, &meal); err != nil {
		return models.Meal{}, fmt.Errorf("create meal: %w", err)
	}
	return meal, nil
}

// List returns the user's meals, most recent first.
func (service *MealService) List(ctx context.Context, userID string) ([]models.Meal, error) {
	meals, err := service.meals.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

func (service *MealService) Get(ctx context.Context, userID string, mealID string) (models.Meal, error) {
	meal, found, err := service.meals.FindByUserAndID(ctx, userID, mealID)
	if err != nil {
		return models.Meal{}, fmt.Errorf("load meal: %w", err)
	}
	if !found {
		return models.Meal{}, ErrMealNotFound
	}
	return meal, nil
}

func (service *MealService) Update(ctx context.Context, userID string, mealID string, input MealInput) (models.Meal, error) {
	if _, err := service.Get(ctx, userID, mealID); err != nil {
		return models.Meal{}, err
	}

	updates, err := input.updates(service.location)
	if err != nil {
		return models.Meal{}, err
	}
	updates["updated_at"] = service.now()

	if err := service.meals.UpdateByUserAndID(ctx, userID, mealID, updates); err != nil {
		return models.Meal{}, fmt.Errorf("update meal: %w", err)
	}
	return service.Get(ctx, userID, mealID)
}

func (service *MealService) Delete(ctx context.Context, userID string, mealID string) error {
	deleted, err := service.meals.DeleteByUserAndID(ctx, userID, mealID)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if !deleted {
		return ErrMealNotFound
	}
	return nil
}

func (service *MealService) Metrics(ctx context.Context, userID string) (MealMetrics, error) {
	meals, err := service.List(ctx, userID)
	if err != nil {
		return MealMetrics{}, err
	}
	return ComputeStreak(meals), nil
}

// DailyMetrics summarizes meals dated on or after today's local midnight.
func (service *MealService) DailyMetrics(ctx context.Context, userID string) (DailySummary, error) {
	today := CalendarDay(service.now(), service.location)
	meals, err := service.meals.ListByUserSince(ctx, userID, today)
	if err != nil {
		return DailySummary{}, fmt.Errorf("list daily meals: %w", err)
	}
	return SummarizeDay(meals), nil
}

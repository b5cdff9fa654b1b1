package api

import (
	"time"

	"github.com/terraincognita07/dailydiet/internal/db"
	"github.com/terraincognita07/dailydiet/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB, location *time.Location) *Handler {
	repositories := db.NewRepositories(database)
	handler.authService = services.NewAuthService(repositories.Users)
	handler.userService = services.NewUserService(repositories.Users)
	handler.mealService = services.NewMealService(repositories.Meals, location)
	handler.modificationService = services.NewMealModificationService(repositories.MealModifications)
	return handler
}

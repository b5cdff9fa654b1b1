package db

import "gorm.io/gorm"

type Repositories struct {
	Users             *UserRepository
	Meals             *MealRepository
	MealModifications *MealModificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:             NewUserRepository(database),
		Meals:             NewMealRepository(database),
		MealModifications: NewMealModificationRepository(database),
	}
}

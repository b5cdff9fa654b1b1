package services

import (
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/dailydiet/internal/models"
)

// MealInput is the payload for both creating and patching a meal.
// Creation requires every field except Calories.
type MealInput struct {
	Name        Optional[string]
	Description Optional[string]
	Date        Optional[string]
	Time        Optional[string]
	OnDiet      Optional[bool]
	Calories    Optional[float64]
}

func (input MealInput) newMeal(userID string, location *time.Location) (models.Meal, error) {
	validation := &ValidationError{}
	meal := models.Meal{UserID: userID}

	meal.Name = requiredText(validation, "name", input.Name, "meal name is required")
	meal.Description = requiredText(validation, "description", input.Description, "description is required")
	meal.Time = requiredText(validation, "time", input.Time, "time is required")
	if date, ok := mealDate(validation, input.Date, location); ok {
		meal.Date = date
	}
	if input.OnDiet.present() {
		meal.OnDiet = input.OnDiet.Value
	} else {
		validation.add("onDiet", "onDiet must be a boolean")
	}
	if input.Calories.present() {
		if calories, ok := mealCalories(validation, input.Calories.Value); ok {
			meal.Calories = &calories
		}
	}

	if err := validation.errOrNil(); err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

func (input MealInput) updates(location *time.Location) (map[string]any, error) {
	validation := &ValidationError{}
	updates := make(map[string]any)

	if input.Name.Set {
		updates["name"] = requiredText(validation, "name", input.Name, "meal name must not be empty")
	}
	if input.Description.Set {
		updates["description"] = requiredText(validation, "description", input.Description, "description must not be empty")
	}
	if input.Time.Set {
		updates["time"] = requiredText(validation, "time", input.Time, "time must not be empty")
	}
	if input.Date.Set {
		if date, ok := mealDate(validation, input.Date, location); ok {
			updates["date"] = date
		}
	}
	if input.OnDiet.Set {
		if input.OnDiet.Null {
			validation.add("onDiet", "onDiet must be a boolean")
		} else {
			updates["on_diet"] = input.OnDiet.Value
		}
	}
	if input.Calories.Set {
		if input.Calories.Null {
			updates["calories"] = nil
		} else if calories, ok := mealCalories(validation, input.Calories.Value); ok {
			updates["calories"] = calories
		}
	}

	if err := validation.errOrNil(); err != nil {
		return nil, err
	}
	return updates, nil
}

func requiredText(validation *ValidationError, field string, value Optional[string], message string) string {
	text := strings.TrimSpace(value.Value)
	if !value.present() || text == "" {
		validation.add(field, message)
		return ""
	}
	return text
}

func mealDate(validation *ValidationError, value Optional[string], location *time.Location) (time.Time, bool) {
	if !value.present() {
		validation.add("date", "date is required")
		return time.Time{}, false
	}
	date, err := ParseMealDate(strings.TrimSpace(value.Value), location)
	if err != nil {
		validation.add("date", "invalid date")
		return time.Time{}, false
	}
	return date, true
}

func mealCalories(validation *ValidationError, value float64) (int, bool) {
	if value <= 0 || value != math.Trunc(value) || value > math.MaxInt32 {
		validation.add("calories", "calories must be a positive integer")
		return 0, false
	}
	return int(value), true
}

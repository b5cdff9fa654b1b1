package services

import "github.com/terraincognita07/dailydiet/internal/models"

// MealMetrics summarizes a meal history.
type MealMetrics struct {
	Total        int `json:"total"`
	OnDiet       int `json:"onDiet"`
	OffDiet      int `json:"offDiet"`
	BestSequence int `json:"bestSequence"`
}

// DailySummary summarizes the meals logged since the start of the current day.
type DailySummary struct {
	Total         int           `json:"total"`
	OnDiet        int           `json:"onDiet"`
	OffDiet       int           `json:"offDiet"`
	TotalCalories int           `json:"totalCalories"`
	Meals         []models.Meal `json:"meals"`
}

// ComputeStreak walks meals in the order given. Callers pass the ledger
// order (date DESC, time DESC), so BestSequence is the longest run of
// consecutive on-diet meals in that order.
func ComputeStreak(meals []models.Meal) MealMetrics {
	metrics := MealMetrics{Total: len(meals)}
	current := 0
	for _, meal := range meals {
		if !meal.OnDiet {
			current = 0
			continue
		}
		metrics.OnDiet++
		current++
		if current > metrics.BestSequence {
			metrics.BestSequence = current
		}
	}
	metrics.OffDiet = metrics.Total - metrics.OnDiet
	return metrics
}

// SummarizeDay counts meals and sums calories; meals without calories count as zero.
func SummarizeDay(meals []models.Meal) DailySummary {
	summary := DailySummary{Total: len(meals), Meals: meals}
	if summary.Meals == nil {
		summary.Meals = []models.Meal{}
	}
	for _, meal := range meals {
		if meal.OnDiet {
			summary.OnDiet++
		}
		if meal.Calories != nil {
			summary.TotalCalories += *meal.Calories
		}
	}
	summary.OffDiet = summary.Total - summary.OnDiet
	return summary
}

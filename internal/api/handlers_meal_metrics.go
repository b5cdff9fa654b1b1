package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetMealMetrics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	metrics, err := handler.mealService.Metrics(c.UserContext(), user.ID)
	if err != nil {
		return handler.respondServiceError(c, "meal metrics", err)
	}
	return c.JSON(metrics)
}

func (handler *Handler) GetDailyMealMetrics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.mealService.DailyMetrics(c.UserContext(), user.ID)
	if err != nil {
		return handler.respondServiceError(c, "daily meal metrics", err)
	}
	return c.JSON(summary)
}
